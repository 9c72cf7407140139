// pcm.go defines the PCM sample formats accepted at the codec boundary.

package lc3

// PCMFormat selects the in-memory representation of PCM samples passed to
// Encode and produced by Decode.
//
// The integer values are stable and match the codec core's wire codes;
// unknown values are rejected per call, never passed through.
type PCMFormat int

const (
	// FormatS16 is signed 16-bit samples in 16-bit words.
	FormatS16 PCMFormat = iota

	// FormatS24 is signed 24-bit samples in the low three bytes of
	// 32-bit words. The high byte sign-extends bit 23.
	FormatS24

	// FormatS24In3LE is signed 24-bit samples packed in 3 bytes,
	// little endian.
	FormatS24In3LE

	// FormatFloat is 32-bit floating point samples in the range [-1, 1].
	FormatFloat
)

// SampleBytes returns the width of one sample in bytes, or 0 for an
// unknown format.
func (f PCMFormat) SampleBytes() int {
	switch f {
	case FormatS16:
		return 2
	case FormatS24:
		return 4
	case FormatS24In3LE:
		return 3
	case FormatFloat:
		return 4
	default:
		return 0
	}
}

// String returns the format name.
func (f PCMFormat) String() string {
	switch f {
	case FormatS16:
		return "S16"
	case FormatS24:
		return "S24"
	case FormatS24In3LE:
		return "S24_3LE"
	case FormatFloat:
		return "FLOAT"
	default:
		return "unknown"
	}
}

func (f PCMFormat) valid() bool {
	return f >= FormatS16 && f <= FormatFloat
}
