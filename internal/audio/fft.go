package audio

import (
	"math/cmplx"

	"github.com/argusdusty/gofft"
	dspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// maxSmoothFactor is the largest prime factor gonum's FFTPACK port has a
// dedicated pass for; larger factors fall into its O(n^2) generic pass.
const maxSmoothFactor = 5

// MagnitudeSpectrum returns |X[k]| for the first floor(N/2) bins of the DFT
// of samples. No window is applied and magnitudes are not scaled by N.
func MagnitudeSpectrum(samples []float64) []float64 {
	n := len(samples)
	half := n / 2
	if half == 0 {
		return []float64{}
	}

	coeffs := transform(samples)

	magnitudes := make([]float64, half)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(coeffs[i])
	}
	return magnitudes
}

// transform returns at least the first N/2 DFT coefficients of samples.
// Power-of-two lengths use gofft's radix-2 transform, lengths built from
// factors 2, 3 and 5 use gonum's mixed-radix real FFT, and everything else
// (primes, large prime factors) uses go-dsp's Bluestein transform.
func transform(samples []float64) []complex128 {
	n := len(samples)
	switch {
	case isPowerOfTwo(n):
		coeffs := gofft.Float64ToComplex128Array(samples)
		if err := gofft.FFT(coeffs); err == nil {
			return coeffs
		}
		fallthrough
	case largestPrimeFactor(n) <= maxSmoothFactor:
		fft := fourier.NewFFT(n)
		return fft.Coefficients(nil, samples)
	default:
		return dspfft.FFTReal(samples)
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// largestPrimeFactor returns the largest prime dividing n, or n for n < 2
func largestPrimeFactor(n int) int {
	if n < 2 {
		return n
	}
	largest := 1
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			largest = p
			n /= p
		}
	}
	if n > 1 {
		largest = n
	}
	return largest
}

// PeakBin returns the index and magnitude of the largest spectrum value.
// An empty spectrum yields bin -1.
func PeakBin(spectrum []float64) (int, float64) {
	bin, peak := -1, 0.0
	for i, v := range spectrum {
		if bin < 0 || v > peak {
			bin, peak = i, v
		}
	}
	return bin, peak
}

// BinFrequency converts a bin index to Hz for an N-point transform
func BinFrequency(bin, n, sampleRate int) float64 {
	if n == 0 {
		return 0
	}
	return float64(bin) * float64(sampleRate) / float64(n)
}
