package audio

import (
	"testing"

	"github.com/linuxmatters/fftspectrum/internal/audio/wavtest"
)

func BenchmarkMagnitudeSpectrum_PowerOfTwo(b *testing.B) {
	samples := wavtest.Sine(440, 44100, 65536, 0.8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MagnitudeSpectrum(samples)
	}
}

func BenchmarkMagnitudeSpectrum_MixedRadix(b *testing.B) {
	// One second at 48 kHz: 2^7 * 3 * 5^3
	samples := wavtest.Sine(440, 48000, 48000, 0.8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MagnitudeSpectrum(samples)
	}
}

func BenchmarkMagnitudeSpectrum_Bluestein(b *testing.B) {
	// One second at 44.1 kHz has a factor of 7^2
	samples := wavtest.Sine(440, 44100, 44100, 0.8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MagnitudeSpectrum(samples)
	}
}

func BenchmarkMagnitudeSpectrum_PrimeLength(b *testing.B) {
	samples := wavtest.Sine(440, 44100, 100003, 0.8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MagnitudeSpectrum(samples)
	}
}
