package audio

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/riff"
)

// extensibleFmt is the 40-byte fmt chunk body of a WAVE_FORMAT_EXTENSIBLE file
type extensibleFmt struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	ExtensionSize  uint16
	ValidBits      uint16
	ChannelMask    uint32
	SubFormat      [16]byte
}

const extensibleFmtSize = 40

// readSubFormat returns the format code stored in the first two bytes of
// the sub-format GUID of an extensible WAV file (1 for PCM, 3 for float).
// go-audio/wav skips the fmt extension, so the chunk is parsed again here.
func readSubFormat(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	parser := riff.New(f)
	if err := parser.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("fmt chunk not found: %w", err)
		}
		if chunk.ID != riff.FmtID {
			chunk.Drain()
			continue
		}

		if chunk.Size < extensibleFmtSize {
			return 0, fmt.Errorf("extensible fmt chunk is %d bytes, want %d", chunk.Size, extensibleFmtSize)
		}

		var header extensibleFmt
		if err := chunk.ReadLE(&header); err != nil {
			return 0, fmt.Errorf("reading fmt chunk: %w", err)
		}
		return int(binary.LittleEndian.Uint16(header.SubFormat[:2])), nil
	}
}

// resolveFormatTag maps WAVE_FORMAT_EXTENSIBLE to the tag in its sub-format
// GUID; other tags are returned unchanged
func resolveFormatTag(filename string, formatTag int) (int, error) {
	if formatTag != wavFormatExtensible {
		return formatTag, nil
	}

	subFormat, err := readSubFormat(filename)
	if err != nil {
		return 0, fmt.Errorf("%w: extensible format without a readable sub-format: %v",
			ErrUnsupportedEncoding, err)
	}
	return subFormat, nil
}
