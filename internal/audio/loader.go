package audio

import (
	"fmt"
	"strconv"
)

// Buffer holds a decoded mono signal
type Buffer struct {
	SampleRate  int
	Encoding    Encoding
	NumChannels int // Channels in the source file, before downmixing

	// Mono samples, roughly within [-1.0, 1.0]
	Samples []float64
}

// Duration returns the signal length in seconds
func (b *Buffer) Duration() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// ProgressFunc receives human-readable progress as key/value pairs
type ProgressFunc func(key, value string)

// Load reads a WAV file into a mono Buffer. progress may be nil.
func Load(filename string, progress ProgressFunc) (*Buffer, error) {
	if progress == nil {
		progress = func(string, string) {}
	}

	decoder, err := OpenDecoder(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	defer decoder.Close()

	progress("Sample rate", fmt.Sprintf("%d Hz", decoder.SampleRate()))
	progress("Data type", decoder.Encoding().String())
	progress("Number of samples", strconv.FormatInt(decoder.NumFrames(), 10))

	samples, err := decoder.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	if decoder.NumChannels() > 1 {
		progress("Channels", fmt.Sprintf("%d, converted to mono by averaging", decoder.NumChannels()))
	}

	return &Buffer{
		SampleRate:  decoder.SampleRate(),
		Encoding:    decoder.Encoding(),
		NumChannels: decoder.NumChannels(),
		Samples:     samples,
	}, nil
}
