package lc3bin

import (
	"encoding/binary"
	"io"
)

// Reader reads LC3 frame blocks from an .lc3 stream.
type Reader struct {
	r        io.Reader
	config   Config
	nsamples uint32 // per channel, from the header
}

// NewReader parses the stream header and returns a Reader positioned at
// the first frame block.
func NewReader(r io.Reader) (*Reader, error) {
	var fixed [baseHeaderSize]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrInvalidHeader
		}
		return nil, err
	}

	config, nsamples, extra, err := unmarshalHeader(fixed[:])
	if err != nil {
		return nil, err
	}
	if extra > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(extra)); err != nil {
			return nil, ErrInvalidHeader
		}
	}

	return &Reader{r: r, config: config, nsamples: nsamples}, nil
}

// Config returns the stream configuration from the header.
func (r *Reader) Config() Config {
	return r.config
}

// TotalSamples returns the per-channel sample count recorded in the
// header, or 0 when the stream was not finalized.
func (r *Reader) TotalSamples() uint32 {
	return r.nsamples
}

// ReadBlock returns the next frame block: the encoded frames of all
// channels for one frame interval, concatenated in channel order. It
// returns io.EOF at the end of the stream.
func (r *Reader) ReadBlock() ([]byte, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(r.r, prefix[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	block := make([]byte, binary.LittleEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(r.r, block); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return block, nil
}
