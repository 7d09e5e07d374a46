package audio

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SignalProfile summarizes a decoded signal and its magnitude spectrum
type SignalProfile struct {
	// Time domain
	Peak         float64 // Largest absolute sample value
	RMS          float64 // Root mean square level
	DynamicRange float64 // Ratio of Peak to RMS (crest factor), 0 for silence

	// Frequency domain
	PeakBin       int     // Index of the largest magnitude, -1 if the spectrum is empty
	PeakMagnitude float64 // Raw magnitude at PeakBin
	PeakFrequency float64 // PeakBin converted to Hz
}

// AnalyzeSignal computes level statistics for buf and locates the dominant
// frequency in spectrum, which must come from buf.Samples
func AnalyzeSignal(buf *Buffer, spectrum []float64) *SignalProfile {
	profile := &SignalProfile{}

	if n := len(buf.Samples); n > 0 {
		for _, s := range buf.Samples {
			if a := math.Abs(s); a > profile.Peak {
				profile.Peak = a
			}
		}
		profile.RMS = floats.Norm(buf.Samples, 2) / math.Sqrt(float64(n))
	}

	// Avoid division by zero
	if profile.RMS > 0 {
		profile.DynamicRange = profile.Peak / profile.RMS
	}

	profile.PeakBin, profile.PeakMagnitude = PeakBin(spectrum)
	if profile.PeakBin >= 0 {
		profile.PeakFrequency = BinFrequency(profile.PeakBin, len(buf.Samples), buf.SampleRate)
	}

	return profile
}

// PeakDBFS returns the peak level in decibels relative to full scale
func (p *SignalProfile) PeakDBFS() float64 {
	return toDB(p.Peak)
}

// RMSDBFS returns the RMS level in decibels relative to full scale
func (p *SignalProfile) RMSDBFS() float64 {
	return toDB(p.RMS)
}

// toDB converts a linear amplitude to decibels; zero is -Inf
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
