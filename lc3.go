// lc3.go defines frame timing parameters and sizing helpers shared by the
// encoder and decoder contexts.

package lc3

import "github.com/Vuzix/liblc3/internal/core"

// FrameDuration is the fixed duration of one codec frame, in microseconds.
// It is constant for a context's entire lifetime.
type FrameDuration int

const (
	// Duration2M5 is a 2.5 ms frame (LC3plus only).
	Duration2M5 FrameDuration = 2500

	// Duration5M is a 5 ms frame (LC3plus only).
	Duration5M FrameDuration = 5000

	// Duration7M5 is a 7.5 ms frame (LC3 only, not available in
	// High-Resolution mode).
	Duration7M5 FrameDuration = 7500

	// Duration10M is a 10 ms frame, available in both LC3 and LC3plus.
	Duration10M FrameDuration = 10000
)

// Compressed frame size limits in standard (non High-Resolution) mode.
const (
	MinFrameBytes = 20
	MaxFrameBytes = 400
)

func validFrameDuration(dt FrameDuration) bool {
	switch dt {
	case Duration2M5, Duration5M, Duration7M5, Duration10M:
		return true
	default:
		return false
	}
}

// validSampleRate returns true if the sample rate is valid for LC3.
func validSampleRate(rate int) bool {
	switch rate {
	case 8000, 16000, 24000, 32000, 48000, 96000:
		return true
	default:
		return false
	}
}

// highRes reports whether the configuration runs in High-Resolution mode.
// 96 kHz is the only rate this package admits solely in High-Resolution
// mode, so the mode is implied by the rate and never a separate knob.
func highRes(sampleRate int) bool {
	return sampleRate == 96000
}

// frameBytesRange returns the valid compressed frame size range for the
// configuration. High-Resolution limits follow ETSI TS 103 634.
func frameBytesRange(dt FrameDuration, sampleRate int) (min, max int) {
	if !highRes(sampleRate) {
		return MinFrameBytes, MaxFrameBytes
	}
	switch dt {
	case Duration2M5:
		return 62, 210
	case Duration5M:
		return 109, 375
	default: // Duration10M
		return 187, 625
	}
}

// FrameSamples returns the number of PCM samples in one frame at the given
// sample rate, or 0 if either parameter is unsupported.
func FrameSamples(dt FrameDuration, sampleRate int) int {
	if !validFrameDuration(dt) || !validSampleRate(sampleRate) {
		return 0
	}
	return int(dt) * sampleRate / 1_000_000
}

// BitrateToFrameBytes returns the per-frame byte budget that realizes the
// given bitrate, clamped into the valid range for the configuration.
func BitrateToFrameBytes(dt FrameDuration, sampleRate, bitrate int) (int, error) {
	if !validFrameDuration(dt) {
		return 0, ErrInvalidFrameDuration
	}
	if !validSampleRate(sampleRate) {
		return 0, ErrInvalidSampleRate
	}
	n := core.FrameBytes(highRes(sampleRate), int(dt), sampleRate, bitrate)
	if n < 0 {
		return 0, ErrUnsupportedConfig
	}
	return n, nil
}

// FrameBytesToBitrate returns the bitrate corresponding to a per-frame
// byte budget for the configuration.
func FrameBytesToBitrate(dt FrameDuration, sampleRate, frameBytes int) (int, error) {
	if !validFrameDuration(dt) {
		return 0, ErrInvalidFrameDuration
	}
	if !validSampleRate(sampleRate) {
		return 0, ErrInvalidSampleRate
	}
	bitrate := core.ResolveBitrate(highRes(sampleRate), int(dt), sampleRate, frameBytes)
	if bitrate < 0 {
		return 0, ErrUnsupportedConfig
	}
	return bitrate, nil
}

// validateConfig checks the construction triple shared by NewEncoder and
// NewDecoder. The duration/rate pairing itself is judged by the codec
// core's sizing query, which is the authoritative capability signal.
func validateConfig(dt FrameDuration, sampleRate, pcmRate int) error {
	if !validFrameDuration(dt) {
		return ErrInvalidFrameDuration
	}
	if !validSampleRate(sampleRate) {
		return ErrInvalidSampleRate
	}
	if pcmRate != 0 && (!validSampleRate(pcmRate) || pcmRate < sampleRate) {
		return ErrInvalidPCMRate
	}
	return nil
}

// effectiveRate returns the rate the PCM side actually runs at.
func effectiveRate(sampleRate, pcmRate int) int {
	if pcmRate != 0 {
		return pcmRate
	}
	return sampleRate
}

// pcmFrameBytes returns the byte span one frame occupies in a PCM buffer
// holding samples of the given format spaced by stride.
func pcmFrameBytes(format PCMFormat, frameSamples, stride int) int {
	if frameSamples == 0 {
		return 0
	}
	return ((frameSamples-1)*stride + 1) * format.SampleBytes()
}
