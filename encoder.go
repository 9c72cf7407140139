// encoder.go implements the public Encoder API for LC3 encoding.

package lc3

import "github.com/Vuzix/liblc3/internal/core"

// Encoder encodes PCM audio samples into LC3 frames.
//
// An Encoder holds one stream's codec state (windowing history across
// frames) and is NOT safe for concurrent use; serialize calls on a single
// Encoder. Distinct Encoders share no state and may run concurrently.
//
// The per-frame byte budget is the length of the output buffer passed to
// Encode. It may differ between successive calls without resetting the
// context: LC3 carries no bit reservoir between frames.
type Encoder struct {
	enc          *core.Encoder
	dt           FrameDuration
	sampleRate   int
	pcmRate      int
	frameSamples int // one frame, at the PCM rate
	minBytes     int
	maxBytes     int
	closed       bool
}

// NewEncoder creates a new LC3 encoder context.
//
// dt is the frame duration, constant for the context's lifetime.
// sampleRate must be one of: 8000, 16000, 24000, 32000, 48000, 96000.
// The 96000 rate selects High-Resolution mode and excludes Duration7M5.
// pcmRate is an optional downsampling rate of the PCM input: 0 means the
// PCM input is at sampleRate; otherwise it must be a supported rate
// greater than or equal to sampleRate.
//
// Construction is two-phase: the codec core is asked for the exact context
// storage size, and a zero answer rejects the configuration before any
// memory is committed. The context must be released with Close exactly
// once.
func NewEncoder(dt FrameDuration, sampleRate, pcmRate int) (*Encoder, error) {
	if err := validateConfig(dt, sampleRate, pcmRate); err != nil {
		return nil, err
	}

	hr := highRes(sampleRate)
	size := core.EncoderSize(hr, int(dt), effectiveRate(sampleRate, pcmRate))
	if size == 0 {
		return nil, ErrUnsupportedConfig
	}

	enc, err := core.SetupEncoder(hr, int(dt), sampleRate, pcmRate, size)
	if err != nil {
		if err == core.ErrAlloc {
			return nil, ErrAllocation
		}
		return nil, ErrUnsupportedConfig
	}

	minBytes, maxBytes := frameBytesRange(dt, sampleRate)
	return &Encoder{
		enc:          enc,
		dt:           dt,
		sampleRate:   sampleRate,
		pcmRate:      pcmRate,
		frameSamples: FrameSamples(dt, effectiveRate(sampleRate, pcmRate)),
		minBytes:     minBytes,
		maxBytes:     maxBytes,
	}, nil
}

// Encode encodes exactly one frame of PCM samples into out.
//
// pcm holds one frame's worth of samples in the given format, with stride
// samples between two consecutive samples (pass the channel count as
// stride to encode one channel of an interleaved buffer). The input is
// never mutated.
//
// len(out) is the byte budget for this frame and is fully consumed: the
// frame is encoded strictly within it. Budgets outside the valid range
// for the configuration are rejected with ErrInvalidFrameBytes, never
// silently clamped.
func (e *Encoder) Encode(format PCMFormat, pcm []byte, stride int, out []byte) error {
	if e.closed {
		return ErrClosed
	}
	if !format.valid() {
		return ErrInvalidPCMFormat
	}
	if stride < 1 {
		return ErrInvalidStride
	}
	if len(out) < e.minBytes || len(out) > e.maxBytes {
		return ErrInvalidFrameBytes
	}
	if len(pcm) < pcmFrameBytes(format, e.frameSamples, stride) {
		return ErrBufferTooSmall
	}

	if e.enc.Encode(int(format), pcm, stride, len(out), out) != 0 {
		return ErrInvalidArgument
	}
	return nil
}

// EncodeS16 is Encode for signed 16-bit samples held in an int16 slice.
// pcm must hold one frame at the given stride.
func (e *Encoder) EncodeS16(pcm []int16, stride int, out []byte) error {
	if e.closed {
		return ErrClosed
	}
	if stride < 1 {
		return ErrInvalidStride
	}
	if len(out) < e.minBytes || len(out) > e.maxBytes {
		return ErrInvalidFrameBytes
	}
	if len(pcm) < (e.frameSamples-1)*stride+1 {
		return ErrBufferTooSmall
	}

	if e.enc.EncodeS16(pcm, stride, len(out), out) != 0 {
		return ErrInvalidArgument
	}
	return nil
}

// Close releases the context storage. The first call frees the storage;
// further calls are no-ops. Any operation after Close returns ErrClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.enc.Free()
	e.enc = nil
	return nil
}

// FrameDuration returns the frame duration in microseconds.
func (e *Encoder) FrameDuration() FrameDuration {
	return e.dt
}

// SampleRate returns the sample rate of the encoded stream in Hz.
func (e *Encoder) SampleRate() int {
	return e.sampleRate
}

// PCMRate returns the sample rate of the PCM input in Hz.
func (e *Encoder) PCMRate() int {
	return effectiveRate(e.sampleRate, e.pcmRate)
}

// FrameSamples returns the number of PCM samples consumed per frame.
func (e *Encoder) FrameSamples() int {
	return e.frameSamples
}

// DelaySamples returns the algorithmic delay of the codec in samples at
// the PCM rate.
func (e *Encoder) DelaySamples() int {
	return core.DelaySamples(highRes(e.sampleRate), int(e.dt), e.PCMRate())
}

// FrameBytesRange returns the valid byte budget range for this context's
// configuration.
func (e *Encoder) FrameBytesRange() (min, max int) {
	return e.minBytes, e.maxBytes
}
