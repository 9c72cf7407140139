// Package core is the boundary to the liblc3 reference implementation.
//
// It exposes the codec capability contract and nothing else: sizing
// queries, in-place context setup, and the one-frame transforms. Context
// storage is allocated here on the native heap and released exactly once
// by the owning context; callers never see raw pointers.
package core

/*
#cgo LDFLAGS: -llc3
#include <stdlib.h>
#include <lc3.h>
*/
import "C"

import "errors"

// Errors reported across the boundary. The public package maps these onto
// its own taxonomy.
var (
	// ErrAlloc indicates the native context storage allocation failed.
	ErrAlloc = errors.New("core: context allocation failed")

	// ErrSetup indicates the core rejected an in-place setup after the
	// sizing query had accepted the configuration.
	ErrSetup = errors.New("core: context setup rejected")
)

// EncoderSize returns the storage size in bytes required for an encoder
// context, or 0 when the configuration is unsupported. srHz is the rate of
// the PCM input stream.
func EncoderSize(hr bool, dtUs, srHz int) uint {
	return uint(C.lc3_hr_encoder_size(C.bool(hr), C.int(dtUs), C.int(srHz)))
}

// DecoderSize returns the storage size in bytes required for a decoder
// context, or 0 when the configuration is unsupported. srHz is the rate of
// the PCM output stream.
func DecoderSize(hr bool, dtUs, srHz int) uint {
	return uint(C.lc3_hr_decoder_size(C.bool(hr), C.int(dtUs), C.int(srHz)))
}

// FrameSamples returns the number of PCM samples in one frame, or -1 on
// bad parameters.
func FrameSamples(hr bool, dtUs, srHz int) int {
	return int(C.lc3_hr_frame_samples(C.bool(hr), C.int(dtUs), C.int(srHz)))
}

// DelaySamples returns the algorithmic delay in samples, or -1 on bad
// parameters.
func DelaySamples(hr bool, dtUs, srHz int) int {
	return int(C.lc3_hr_delay_samples(C.bool(hr), C.int(dtUs), C.int(srHz)))
}

// FrameBytes returns the byte budget realizing a bitrate, clamped to the
// configuration's valid range, or -1 on bad parameters.
func FrameBytes(hr bool, dtUs, srHz, bitrate int) int {
	return int(C.lc3_hr_frame_bytes(C.bool(hr), C.int(dtUs), C.int(srHz), C.int(bitrate)))
}

// ResolveBitrate returns the bitrate corresponding to a byte budget, or -1
// on bad parameters.
func ResolveBitrate(hr bool, dtUs, srHz, nbytes int) int {
	return int(C.lc3_hr_resolve_bitrate(C.bool(hr), C.int(dtUs), C.int(srHz), C.int(nbytes)))
}
