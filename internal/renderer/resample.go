package renderer

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ErrDegenerateSignal is returned when the spectrum has no positive
// magnitude to normalize against (empty or silent input)
var ErrDegenerateSignal = errors.New("max FFT magnitude is zero or negative")

// Resample maps data onto width evenly spaced positions spanning
// [0, len(data)] inclusive, interpolating linearly between the integer
// indices 0..len(data)-1. Positions past the last index take the last value.
func Resample(data []float64, width int) ([]float64, error) {
	if width <= 0 {
		return nil, fmt.Errorf("resample width must be positive, got %d", width)
	}

	out := make([]float64, width)
	switch len(data) {
	case 0:
		return out, nil
	case 1:
		for i := range out {
			out[i] = data[0]
		}
		return out, nil
	}

	// Original sample positions 0, 1, ..., n-1
	xs := make([]float64, len(data))
	for i := range xs {
		xs[i] = float64(i)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, data); err != nil {
		return nil, fmt.Errorf("fitting interpolant: %w", err)
	}

	if width == 1 {
		out[0] = pl.Predict(0)
		return out, nil
	}

	positions := floats.Span(make([]float64, width), 0, float64(len(data)))
	for i, x := range positions {
		out[i] = pl.Predict(x)
	}
	return out, nil
}

// Normalize divides every value by the maximum so the result peaks at
// exactly 1.0. A maximum that is not a positive finite number is rejected.
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty spectrum", ErrDegenerateSignal)
	}

	maxVal := floats.Max(values)
	if !(maxVal > 0) || math.IsInf(maxVal, 1) {
		return nil, fmt.Errorf("%w: max value %g", ErrDegenerateSignal, maxVal)
	}

	normalized := make([]float64, len(values))
	for i, v := range values {
		normalized[i] = v / maxVal
	}
	return normalized, nil
}
