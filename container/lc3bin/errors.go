package lc3bin

import "errors"

// Package-level errors for LC3 stream parsing and writing.
var (
	// ErrInvalidHeader indicates the stream header is malformed.
	// This includes a missing 0xCC1C magic, a truncated header, or a
	// header size smaller than the fixed layout.
	ErrInvalidHeader = errors.New("lc3bin: invalid stream header")

	// ErrInvalidConfig indicates a Writer configuration that does not
	// describe a valid LC3 stream.
	ErrInvalidConfig = errors.New("lc3bin: invalid stream configuration")

	// ErrBlockTooLarge indicates a frame block larger than the uint16
	// length prefix can represent.
	ErrBlockTooLarge = errors.New("lc3bin: frame block exceeds 65535 bytes")

	// ErrTruncated indicates the stream ended inside a frame block.
	ErrTruncated = errors.New("lc3bin: truncated frame block")
)
