// errors.go defines public error types for the lc3 package.

package lc3

import "errors"

// Public error types for context construction and frame operations.
var (
	// ErrInvalidFrameDuration indicates an unsupported frame duration.
	// Valid durations are 2500, 5000, 7500 and 10000 microseconds.
	ErrInvalidFrameDuration = errors.New("lc3: invalid frame duration (must be 2500, 5000, 7500 or 10000 us)")

	// ErrInvalidSampleRate indicates an unsupported sample rate.
	// Valid sample rates are: 8000, 16000, 24000, 32000, 48000, 96000.
	ErrInvalidSampleRate = errors.New("lc3: invalid sample rate (must be 8000, 16000, 24000, 32000, 48000 or 96000)")

	// ErrInvalidPCMRate indicates an unsupported PCM resampling rate.
	// The PCM rate must be 0 (same as the codec rate) or a supported
	// rate greater than or equal to the codec rate.
	ErrInvalidPCMRate = errors.New("lc3: invalid pcm rate (must be 0 or a supported rate >= the codec rate)")

	// ErrUnsupportedConfig indicates a frame duration and sample rate
	// combination the codec cannot run, such as 7.5 ms at 96 kHz.
	// Detected before any context storage is allocated.
	ErrUnsupportedConfig = errors.New("lc3: unsupported frame duration and sample rate combination")

	// ErrAllocation indicates the context storage could not be allocated.
	// Distinct from parameter rejection: the configuration itself is valid.
	ErrAllocation = errors.New("lc3: cannot allocate context storage")

	// ErrInvalidPCMFormat indicates an unknown PCM sample format code.
	ErrInvalidPCMFormat = errors.New("lc3: invalid pcm format")

	// ErrInvalidStride indicates a non-positive sample stride.
	ErrInvalidStride = errors.New("lc3: invalid stride (must be >= 1)")

	// ErrInvalidFrameBytes indicates a compressed frame size outside the
	// valid range for the active configuration (20-400 bytes in standard
	// mode, narrower per-configuration ranges in High-Resolution mode).
	ErrInvalidFrameBytes = errors.New("lc3: frame byte count out of range for configuration")

	// ErrBufferTooSmall indicates the PCM buffer cannot hold one frame
	// at the requested format and stride.
	ErrBufferTooSmall = errors.New("lc3: pcm buffer too small for one frame")

	// ErrClosed indicates an operation on a closed context.
	ErrClosed = errors.New("lc3: context is closed")

	// ErrInvalidArgument indicates the codec core rejected a call this
	// package could not reject up front.
	ErrInvalidArgument = errors.New("lc3: invalid argument")
)
