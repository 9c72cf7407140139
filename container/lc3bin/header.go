package lc3bin

import (
	"encoding/binary"

	lc3 "github.com/Vuzix/liblc3"
)

const (
	magic = 0xCC1C

	baseHeaderSize = 18 // fixed fields
	hrHeaderSize   = 20 // fixed fields + high-resolution flag

	nsamplesOffset = 14 // low 16 bits of the per-channel sample count
)

// Config describes one LC3 stream.
type Config struct {
	// FrameDuration is the frame duration shared by every frame.
	FrameDuration lc3.FrameDuration

	// SampleRate is the codec sample rate in Hz.
	SampleRate int

	// Bitrate is the nominal bitrate of one channel in bit/s. It sizes
	// the per-channel byte budget recorded in the header; actual block
	// sizes are carried per frame.
	Bitrate int

	// Channels is the channel count.
	Channels int
}

func (c Config) validate() error {
	if lc3.FrameSamples(c.FrameDuration, c.SampleRate) == 0 {
		return ErrInvalidConfig
	}
	if c.Channels < 1 || c.Bitrate < 1 {
		return ErrInvalidConfig
	}
	return nil
}

// frameSamples returns the per-channel samples in one frame interval.
func (c Config) frameSamples() int {
	return lc3.FrameSamples(c.FrameDuration, c.SampleRate)
}

func (c Config) highRes() bool {
	return c.SampleRate == 96000
}

func (c Config) headerSize() int {
	if c.highRes() {
		return hrHeaderSize
	}
	return baseHeaderSize
}

// marshalHeader lays out the stream header for the configuration with the
// given per-channel total sample count.
func marshalHeader(c Config, nsamples uint32) []byte {
	buf := make([]byte, c.headerSize())
	le := binary.LittleEndian
	le.PutUint16(buf[0:], magic)
	le.PutUint16(buf[2:], uint16(c.headerSize()))
	le.PutUint16(buf[4:], uint16(c.SampleRate/100))
	le.PutUint16(buf[6:], uint16(c.Bitrate/100))
	le.PutUint16(buf[8:], uint16(c.Channels))
	le.PutUint16(buf[10:], uint16(int(c.FrameDuration)/10))
	le.PutUint16(buf[12:], 0) // no error protection
	le.PutUint16(buf[nsamplesOffset:], uint16(nsamples))
	le.PutUint16(buf[nsamplesOffset+2:], uint16(nsamples>>16))
	if c.highRes() {
		le.PutUint16(buf[18:], 1)
	}
	return buf
}

// unmarshalHeader parses the fixed fields of a stream header. extra is the
// number of header bytes beyond the fixed layout still to be consumed.
func unmarshalHeader(buf []byte) (c Config, nsamples uint32, extra int, err error) {
	le := binary.LittleEndian
	if le.Uint16(buf[0:]) != magic {
		return Config{}, 0, 0, ErrInvalidHeader
	}
	size := int(le.Uint16(buf[2:]))
	if size < baseHeaderSize {
		return Config{}, 0, 0, ErrInvalidHeader
	}

	c = Config{
		FrameDuration: lc3.FrameDuration(int(le.Uint16(buf[10:])) * 10),
		SampleRate:    int(le.Uint16(buf[4:])) * 100,
		Bitrate:       int(le.Uint16(buf[6:])) * 100,
		Channels:      int(le.Uint16(buf[8:])),
	}
	nsamples = uint32(le.Uint16(buf[nsamplesOffset:])) |
		uint32(le.Uint16(buf[nsamplesOffset+2:]))<<16

	if err := c.validate(); err != nil {
		return Config{}, 0, 0, ErrInvalidHeader
	}
	return c, nsamples, size - baseHeaderSize, nil
}
