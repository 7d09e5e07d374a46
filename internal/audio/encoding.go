package audio

import "fmt"

// WAV format tags from the fmt chunk
const (
	wavFormatPCM        = 1
	wavFormatIEEEFloat  = 3
	wavFormatExtensible = 0xFFFE
)

// Encoding identifies how samples are stored in the PCM data chunk
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingUint8
	EncodingInt16
	EncodingInt24
	EncodingInt32
	EncodingFloat32
	EncodingFloat64
)

// String returns the dtype-style name printed in progress output
func (e Encoding) String() string {
	switch e {
	case EncodingUint8:
		return "uint8"
	case EncodingInt16:
		return "int16"
	case EncodingInt24:
		return "int24"
	case EncodingInt32:
		return "int32"
	case EncodingFloat32:
		return "float32"
	case EncodingFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsFloat reports whether samples are IEEE floating point
func (e Encoding) IsFloat() bool {
	return e == EncodingFloat32 || e == EncodingFloat64
}

// BytesPerSample returns the storage size of one sample for one channel
func (e Encoding) BytesPerSample() int {
	switch e {
	case EncodingUint8:
		return 1
	case EncodingInt16:
		return 2
	case EncodingInt24:
		return 3
	case EncodingInt32, EncodingFloat32:
		return 4
	case EncodingFloat64:
		return 8
	default:
		return 0
	}
}

// Normalize converts a raw integer sample to floating point amplitude.
// Unsigned 8-bit data is centred on 128; signed data is divided by
// 2^(bits-1). Float encodings are returned unscaled.
func (e Encoding) Normalize(v int) float64 {
	switch e {
	case EncodingUint8:
		return (float64(v) - 128) / 128.0
	case EncodingInt16:
		return float64(v) / 32768.0
	case EncodingInt24:
		return float64(v) / 8388608.0
	case EncodingInt32:
		return float64(v) / 2147483648.0
	default:
		return float64(v)
	}
}

// encodingFor maps a WAV format tag and bit depth to an Encoding.
// Extensible files must be resolved to their sub-format first.
func encodingFor(formatTag, bitDepth int) (Encoding, error) {
	switch formatTag {
	case wavFormatPCM:
		switch bitDepth {
		case 8:
			return EncodingUint8, nil
		case 16:
			return EncodingInt16, nil
		case 24:
			return EncodingInt24, nil
		case 32:
			return EncodingInt32, nil
		}
	case wavFormatIEEEFloat:
		switch bitDepth {
		case 32:
			return EncodingFloat32, nil
		case 64:
			return EncodingFloat64, nil
		}
	}
	return EncodingUnknown, fmt.Errorf("%w: format tag %d with %d bits per sample",
		ErrUnsupportedEncoding, formatTag, bitDepth)
}
