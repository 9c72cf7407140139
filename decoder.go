// decoder.go implements the public Decoder API for LC3 decoding.

package lc3

import "github.com/Vuzix/liblc3/internal/core"

// Decoder decodes LC3 frames into PCM audio samples.
//
// A Decoder holds one stream's codec state, including the packet loss
// concealment history, and is NOT safe for concurrent use; serialize calls
// on a single Decoder. Distinct Decoders share no state and may run
// concurrently.
type Decoder struct {
	dec          *core.Decoder
	dt           FrameDuration
	sampleRate   int
	pcmRate      int
	frameSamples int // one frame, at the PCM rate
	minBytes     int
	maxBytes     int
	closed       bool
}

// NewDecoder creates a new LC3 decoder context.
//
// dt is the frame duration, constant for the context's lifetime.
// sampleRate must be one of: 8000, 16000, 24000, 32000, 48000, 96000.
// The 96000 rate selects High-Resolution mode and excludes Duration7M5.
// pcmRate is an optional upsampling rate of the PCM output: 0 means the
// PCM output is at sampleRate; otherwise it must be a supported rate
// greater than or equal to sampleRate.
//
// Construction mirrors NewEncoder: size query first, rejection before any
// storage is committed, then in-place setup. The context must be released
// with Close exactly once.
func NewDecoder(dt FrameDuration, sampleRate, pcmRate int) (*Decoder, error) {
	if err := validateConfig(dt, sampleRate, pcmRate); err != nil {
		return nil, err
	}

	hr := highRes(sampleRate)
	size := core.DecoderSize(hr, int(dt), effectiveRate(sampleRate, pcmRate))
	if size == 0 {
		return nil, ErrUnsupportedConfig
	}

	dec, err := core.SetupDecoder(hr, int(dt), sampleRate, pcmRate, size)
	if err != nil {
		if err == core.ErrAlloc {
			return nil, ErrAllocation
		}
		return nil, ErrUnsupportedConfig
	}

	minBytes, maxBytes := frameBytesRange(dt, sampleRate)
	return &Decoder{
		dec:          dec,
		dt:           dt,
		sampleRate:   sampleRate,
		pcmRate:      pcmRate,
		frameSamples: FrameSamples(dt, effectiveRate(sampleRate, pcmRate)),
		minBytes:     minBytes,
		maxBytes:     maxBytes,
	}, nil
}

// Decode decodes one compressed frame into pcm, or conceals a lost one.
//
// A nil or empty in signals a lost frame: the decoder synthesizes a full
// replacement frame from its concealment state and returns concealed=true.
// Otherwise len(in) is the frame's actual compressed size; sizes outside
// the valid range for the configuration are rejected with
// ErrInvalidFrameBytes.
//
// pcm is fully overwritten with exactly one frame of samples in the given
// format at the given stride; a pcm buffer too small for that is rejected
// with ErrBufferTooSmall before the core is called.
func (d *Decoder) Decode(in []byte, format PCMFormat, pcm []byte, stride int) (concealed bool, err error) {
	if d.closed {
		return false, ErrClosed
	}
	if !format.valid() {
		return false, ErrInvalidPCMFormat
	}
	if stride < 1 {
		return false, ErrInvalidStride
	}
	if len(in) > 0 && (len(in) < d.minBytes || len(in) > d.maxBytes) {
		return false, ErrInvalidFrameBytes
	}
	if len(pcm) < pcmFrameBytes(format, d.frameSamples, stride) {
		return false, ErrBufferTooSmall
	}

	switch d.dec.Decode(in, int(format), pcm, stride) {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidArgument
	}
}

// DecodeS16 is Decode into signed 16-bit samples held in an int16 slice.
// pcm must hold one frame at the given stride.
func (d *Decoder) DecodeS16(in []byte, pcm []int16, stride int) (concealed bool, err error) {
	if d.closed {
		return false, ErrClosed
	}
	if stride < 1 {
		return false, ErrInvalidStride
	}
	if len(in) > 0 && (len(in) < d.minBytes || len(in) > d.maxBytes) {
		return false, ErrInvalidFrameBytes
	}
	if len(pcm) < (d.frameSamples-1)*stride+1 {
		return false, ErrBufferTooSmall
	}

	switch d.dec.DecodeS16(in, pcm, stride) {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidArgument
	}
}

// Close releases the context storage. The first call frees the storage;
// further calls are no-ops. Any operation after Close returns ErrClosed.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.dec.Free()
	d.dec = nil
	return nil
}

// FrameDuration returns the frame duration in microseconds.
func (d *Decoder) FrameDuration() FrameDuration {
	return d.dt
}

// SampleRate returns the sample rate of the encoded stream in Hz.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

// PCMRate returns the sample rate of the PCM output in Hz.
func (d *Decoder) PCMRate() int {
	return effectiveRate(d.sampleRate, d.pcmRate)
}

// FrameSamples returns the number of PCM samples produced per frame.
func (d *Decoder) FrameSamples() int {
	return d.frameSamples
}

// DelaySamples returns the algorithmic delay of the codec in samples at
// the PCM rate.
func (d *Decoder) DelaySamples() int {
	return core.DelaySamples(highRes(d.sampleRate), int(d.dt), d.PCMRate())
}

// FrameBytesRange returns the valid compressed frame size range for this
// context's configuration.
func (d *Decoder) FrameBytesRange() (min, max int) {
	return d.minBytes, d.maxBytes
}
