// Package lc3bin implements the LC3 binary stream format used by the
// reference codec tooling.
//
// An .lc3 file is a fixed little-endian header followed by a sequence of
// frame blocks. The header carries the stream configuration:
//
//	offset  size  field
//	0       2     magic 0xCC1C
//	2       2     header size in bytes
//	4       2     sample rate in 100 Hz units
//	6       2     bitrate in 100 bit/s units
//	8       2     channel count
//	10      2     frame duration in 10 us units
//	12      2     error protection mode (always 0 here)
//	14      2     total samples per channel, low 16 bits
//	16      2     total samples per channel, high 16 bits
//	18      2     high-resolution mode flag (only when header size >= 20)
//
// Each frame block is a uint16 byte count followed by that many bytes: the
// encoded frames of all channels for one frame interval, concatenated in
// channel order. The byte budget per channel is the block size divided by
// the channel count.
//
// The total sample count is written last: Writer.Close seeks back and
// patches the header, which is why Writer requires an io.WriteSeeker.
package lc3bin
