// Package wavtest writes small WAV fixtures for tests.
package wavtest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV format tags
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
	FormatALaw      = 6

	FormatExtensible = 0xFFFE
)

// WriteInt encodes interleaved integer PCM samples with go-audio's encoder.
// 8-bit data is unsigned (0..255), wider depths are signed.
func WriteInt(path string, sampleRate, bitDepth, numChans int, data []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, numChans, FormatPCM)
	buf := &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// WriteFloat32 writes interleaved samples as 32-bit IEEE float
func WriteFloat32(path string, sampleRate, numChans int, data []float64) error {
	return WriteRaw(path, FormatIEEEFloat, sampleRate, numChans, 32, Float32Bytes(data))
}

// WriteFloat64 writes interleaved samples as 64-bit IEEE float
func WriteFloat64(path string, sampleRate, numChans int, data []float64) error {
	raw := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(raw[i*8:], math.Float64bits(v))
	}
	return WriteRaw(path, FormatIEEEFloat, sampleRate, numChans, 64, raw)
}

// WriteRaw writes a canonical 44-byte-header WAV with an arbitrary format
// tag and pre-encoded data. go-audio's encoder only produces integer PCM.
func WriteRaw(path string, formatTag, sampleRate, numChans, bitDepth int, data []byte) error {
	var fmtBody bytes.Buffer
	writeFmtFields(&fmtBody, formatTag, sampleRate, numChans, bitDepth)
	return writeWAV(path, fmtBody.Bytes(), data)
}

// WriteExtensible writes a WAVE_FORMAT_EXTENSIBLE file whose sub-format GUID
// carries subFormat (FormatPCM or FormatIEEEFloat), as DAWs write 32-bit
// float and multichannel audio.
func WriteExtensible(path string, subFormat, sampleRate, numChans, bitDepth int, data []byte) error {
	var fmtBody bytes.Buffer
	writeFmtFields(&fmtBody, FormatExtensible, sampleRate, numChans, bitDepth)
	binary.Write(&fmtBody, binary.LittleEndian, uint16(22))       // extension size
	binary.Write(&fmtBody, binary.LittleEndian, uint16(bitDepth)) // valid bits
	binary.Write(&fmtBody, binary.LittleEndian, uint32(0))        // channel mask

	// KSDATAFORMAT_SUBTYPE_* GUID: format code followed by a fixed suffix
	binary.Write(&fmtBody, binary.LittleEndian, uint16(subFormat))
	fmtBody.Write([]byte{
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00,
		0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
	})

	return writeWAV(path, fmtBody.Bytes(), data)
}

// Float32Bytes encodes samples as little-endian 32-bit IEEE float
func Float32Bytes(samples []float64) []byte {
	raw := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(float32(v)))
	}
	return raw
}

func writeFmtFields(b *bytes.Buffer, formatTag, sampleRate, numChans, bitDepth int) {
	blockAlign := numChans * ((bitDepth + 7) / 8)
	byteRate := sampleRate * blockAlign

	binary.Write(b, binary.LittleEndian, uint16(formatTag))
	binary.Write(b, binary.LittleEndian, uint16(numChans))
	binary.Write(b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(b, binary.LittleEndian, uint32(byteRate))
	binary.Write(b, binary.LittleEndian, uint16(blockAlign))
	binary.Write(b, binary.LittleEndian, uint16(bitDepth))
}

func writeWAV(path string, fmtBody, data []byte) error {
	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(4+8+len(fmtBody)+8+len(data)))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(len(fmtBody)))
	b.Write(fmtBody)

	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(len(data)))
	b.Write(data)

	return os.WriteFile(path, b.Bytes(), 0o644)
}

// Sine returns n samples of a sine wave at freq Hz
func Sine(freq float64, sampleRate, n int, amplitude float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}
	return samples
}

// Int16 quantizes [-1, 1] samples to signed 16-bit values
func Int16(samples []float64) []int {
	data := make([]int, len(samples))
	for i, s := range samples {
		v := math.Round(s * 32767)
		data[i] = int(math.Max(-32768, math.Min(32767, v)))
	}
	return data
}
