package audio

import "errors"

var (
	// ErrInvalidWAV is returned when the file is not a readable RIFF/WAVE container
	ErrInvalidWAV = errors.New("invalid WAV file")

	// ErrUnsupportedEncoding is returned for sample formats other than
	// 8/16/24/32-bit integer PCM and 32/64-bit IEEE float
	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")

	// ErrNoSamples is returned when the data chunk holds no complete frame
	ErrNoSamples = errors.New("no audio samples")
)

// AudioDecoder defines the interface for PCM container decoders
type AudioDecoder interface {
	// ReadAll decodes every frame, downmixed to mono and normalized to
	// floating point amplitude
	ReadAll() ([]float64, error)

	// SampleRate returns the audio sample rate in Hz
	SampleRate() int

	// NumChannels returns the number of interleaved channels
	NumChannels() int

	// NumFrames returns the number of complete frames in the file
	NumFrames() int64

	// Encoding returns the on-disk sample encoding
	Encoding() Encoding

	// Close closes the decoder and releases resources
	Close() error
}

var _ AudioDecoder = (*WAVDecoder)(nil)

// OpenDecoder returns a decoder for filename
func OpenDecoder(filename string) (AudioDecoder, error) {
	d, err := NewWAVDecoder(filename)
	if err != nil {
		return nil, err
	}
	return d, nil
}
