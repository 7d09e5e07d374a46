package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// WAVDecoder implements AudioDecoder for RIFF/WAVE files
type WAVDecoder struct {
	decoder    *wav.Decoder
	file       *os.File
	sampleRate int
	numChans   int
	encoding   Encoding
	pcmLen     int64
}

// NewWAVDecoder opens a WAV file and reads its format without decoding samples
func NewWAVDecoder(filename string) (*WAVDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		f.Close()
		if decErr := decoder.Err(); decErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWAV, decErr)
		}
		return nil, ErrInvalidWAV
	}

	// Position on the data chunk so PCMLen is known up front
	if err := decoder.FwdToPCM(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: failed to seek to PCM data: %v", ErrInvalidWAV, err)
	}

	if decoder.SampleRate == 0 || decoder.NumChans == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: sample rate %d Hz, %d channels",
			ErrInvalidWAV, decoder.SampleRate, decoder.NumChans)
	}

	formatTag, err := resolveFormatTag(filename, int(decoder.WavAudioFormat))
	if err != nil {
		f.Close()
		return nil, err
	}

	encoding, err := encodingFor(formatTag, int(decoder.BitDepth))
	if err != nil {
		f.Close()
		return nil, err
	}

	return &WAVDecoder{
		decoder:    decoder,
		file:       f,
		sampleRate: int(decoder.SampleRate),
		numChans:   int(decoder.NumChans),
		encoding:   encoding,
		pcmLen:     decoder.PCMLen(),
	}, nil
}

// NumFrames returns the number of complete frames in the data chunk
func (d *WAVDecoder) NumFrames() int64 {
	frameSize := int64(d.encoding.BytesPerSample() * d.numChans)
	if frameSize == 0 {
		return 0
	}
	return d.pcmLen / frameSize
}

// ReadAll decodes the whole data chunk into mono float64 samples
func (d *WAVDecoder) ReadAll() ([]float64, error) {
	var interleaved []float64
	var err error

	if d.encoding.IsFloat() {
		interleaved, err = d.readFloat()
	} else {
		interleaved, err = d.readInt()
	}
	if err != nil {
		return nil, err
	}

	// Drop a trailing partial frame
	numFrames := len(interleaved) / d.numChans
	if numFrames == 0 {
		return nil, ErrNoSamples
	}

	return downmix(interleaved[:numFrames*d.numChans], d.numChans), nil
}

// readInt decodes integer PCM through go-audio and normalizes per encoding
func (d *WAVDecoder) readInt() ([]float64, error) {
	buf, err := d.decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM buffer: %w", err)
	}

	samples := make([]float64, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = d.encoding.Normalize(s)
	}
	return samples, nil
}

// readFloat decodes IEEE float data straight from the PCM chunk.
// go-audio's IntBuffer path cannot represent float samples.
func (d *WAVDecoder) readFloat() ([]float64, error) {
	if d.decoder.PCMChunk == nil {
		return nil, fmt.Errorf("%w: PCM chunk not found", ErrInvalidWAV)
	}

	raw := make([]byte, d.pcmLen)
	n, err := io.ReadFull(d.decoder.PCMChunk, raw)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	raw = raw[:n]

	width := d.encoding.BytesPerSample()
	samples := make([]float64, len(raw)/width)
	for i := range samples {
		b := raw[i*width : (i+1)*width]
		if d.encoding == EncodingFloat64 {
			samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(b))
		} else {
			samples[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
		}
	}
	return samples, nil
}

// downmix averages interleaved channels into one sample per frame
func downmix(interleaved []float64, numChans int) []float64 {
	if numChans == 1 {
		return interleaved
	}

	numFrames := len(interleaved) / numChans
	samples := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		var sum float64
		for ch := 0; ch < numChans; ch++ {
			sum += interleaved[i*numChans+ch]
		}
		samples[i] = sum / float64(numChans)
	}
	return samples
}

// SampleRate returns the sample rate
func (d *WAVDecoder) SampleRate() int {
	return d.sampleRate
}

// NumChannels returns the number of audio channels
func (d *WAVDecoder) NumChannels() int {
	return d.numChans
}

// Encoding returns the sample encoding
func (d *WAVDecoder) Encoding() Encoding {
	return d.encoding
}

// Close closes the decoder and releases resources
func (d *WAVDecoder) Close() error {
	if d.file != nil {
		err := d.file.Close()
		d.file = nil
		return err
	}
	return nil
}
