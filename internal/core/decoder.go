package core

/*
#include <stdlib.h>
#include <lc3.h>
*/
import "C"

import "unsafe"

// Decoder is one native decoder context. The storage pointed to by mem is
// exclusively owned by this value and must be released with Free exactly
// once.
type Decoder struct {
	mem unsafe.Pointer
	dec C.lc3_decoder_t
}

// SetupDecoder allocates size bytes of context storage and initializes a
// fresh decoder in it. size must come from a successful DecoderSize query
// for the same configuration.
func SetupDecoder(hr bool, dtUs, srHz, srPcmHz int, size uint) (*Decoder, error) {
	mem := C.malloc(C.size_t(size))
	if mem == nil {
		return nil, ErrAlloc
	}
	dec := C.lc3_hr_setup_decoder(C.bool(hr), C.int(dtUs), C.int(srHz), C.int(srPcmHz), mem)
	if dec == nil {
		C.free(mem)
		return nil, ErrSetup
	}
	return &Decoder{mem: mem, dec: dec}, nil
}

// Decode transforms one compressed frame into PCM bytes. A nil input
// requests packet loss concealment. The return value is the core's status:
// 0 on success, 1 when concealment was performed, -1 on bad parameters.
func (d *Decoder) Decode(in []byte, format int, pcm []byte, stride int) int {
	var inPtr unsafe.Pointer
	if len(in) > 0 {
		inPtr = unsafe.Pointer(&in[0])
	}
	return int(C.lc3_decode(d.dec, inPtr, C.int(len(in)), C.enum_lc3_pcm_format(format),
		unsafe.Pointer(&pcm[0]), C.int(stride)))
}

// DecodeS16 is Decode into native int16 sample words, avoiding a copy.
func (d *Decoder) DecodeS16(in []byte, pcm []int16, stride int) int {
	var inPtr unsafe.Pointer
	if len(in) > 0 {
		inPtr = unsafe.Pointer(&in[0])
	}
	return int(C.lc3_decode(d.dec, inPtr, C.int(len(in)), C.LC3_PCM_FORMAT_S16,
		unsafe.Pointer(&pcm[0]), C.int(stride)))
}

// Free releases the context storage. Safe to call on an already freed
// decoder.
func (d *Decoder) Free() {
	if d.mem != nil {
		C.free(d.mem)
		d.mem = nil
		d.dec = nil
	}
}
