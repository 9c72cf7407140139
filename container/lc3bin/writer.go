package lc3bin

import (
	"encoding/binary"
	"io"
)

// Writer writes LC3 frame blocks to an .lc3 stream.
//
// The header is written immediately with a zero sample count; Close seeks
// back and patches the real count, then leaves the underlying stream open
// for the caller to close.
type Writer struct {
	ws       io.WriteSeeker
	config   Config
	nsamples uint32 // per channel
	closed   bool
}

// NewWriter writes the stream header and returns a Writer for the frame
// blocks that follow.
func NewWriter(ws io.WriteSeeker, config Config) (*Writer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if _, err := ws.Write(marshalHeader(config, 0)); err != nil {
		return nil, err
	}
	return &Writer{ws: ws, config: config}, nil
}

// Config returns the stream configuration.
func (w *Writer) Config() Config {
	return w.config
}

// WriteBlock writes the frame block for one frame interval: the encoded
// frames of all channels, concatenated in channel order.
func (w *Writer) WriteBlock(block []byte) error {
	if w.closed {
		return io.ErrClosedPipe
	}
	if len(block) > 0xFFFF {
		return ErrBlockTooLarge
	}

	var prefix [2]byte
	binary.LittleEndian.PutUint16(prefix[:], uint16(len(block)))
	if _, err := w.ws.Write(prefix[:]); err != nil {
		return err
	}
	if _, err := w.ws.Write(block); err != nil {
		return err
	}

	w.nsamples += uint32(w.config.frameSamples())
	return nil
}

// Close patches the per-channel sample count into the header. Further
// writes are rejected; calling Close again is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if _, err := w.ws.Seek(nsamplesOffset, io.SeekStart); err != nil {
		return err
	}
	var count [4]byte
	binary.LittleEndian.PutUint16(count[0:], uint16(w.nsamples))
	binary.LittleEndian.PutUint16(count[2:], uint16(w.nsamples>>16))
	if _, err := w.ws.Write(count[:]); err != nil {
		return err
	}
	_, err := w.ws.Seek(0, io.SeekEnd)
	return err
}
