package core

/*
#include <stdlib.h>
#include <lc3.h>
*/
import "C"

import "unsafe"

// Encoder is one native encoder context. The storage pointed to by mem is
// exclusively owned by this value and must be released with Free exactly
// once.
type Encoder struct {
	mem unsafe.Pointer
	enc C.lc3_encoder_t
}

// SetupEncoder allocates size bytes of context storage and initializes a
// fresh encoder in it. size must come from a successful EncoderSize query
// for the same configuration.
func SetupEncoder(hr bool, dtUs, srHz, srPcmHz int, size uint) (*Encoder, error) {
	mem := C.malloc(C.size_t(size))
	if mem == nil {
		return nil, ErrAlloc
	}
	enc := C.lc3_hr_setup_encoder(C.bool(hr), C.int(dtUs), C.int(srHz), C.int(srPcmHz), mem)
	if enc == nil {
		C.free(mem)
		return nil, ErrSetup
	}
	return &Encoder{mem: mem, enc: enc}, nil
}

// Encode transforms one frame of PCM bytes into nbytes of output. The
// return value is the core's status: 0 on success, -1 on bad parameters.
func (e *Encoder) Encode(format int, pcm []byte, stride, nbytes int, out []byte) int {
	return int(C.lc3_encode(e.enc, C.enum_lc3_pcm_format(format),
		unsafe.Pointer(&pcm[0]), C.int(stride), C.int(nbytes), unsafe.Pointer(&out[0])))
}

// EncodeS16 is Encode for native int16 sample words, avoiding a copy.
func (e *Encoder) EncodeS16(pcm []int16, stride, nbytes int, out []byte) int {
	return int(C.lc3_encode(e.enc, C.LC3_PCM_FORMAT_S16,
		unsafe.Pointer(&pcm[0]), C.int(stride), C.int(nbytes), unsafe.Pointer(&out[0])))
}

// Free releases the context storage. Safe to call on an already freed
// encoder.
func (e *Encoder) Free() {
	if e.mem != nil {
		C.free(e.mem)
		e.mem = nil
		e.enc = nil
	}
}
