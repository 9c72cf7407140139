package lc3

import (
	"bytes"
	"math"
	"testing"
)

// generateSineS16 generates a sine wave as interleaved int16 samples.
func generateSineS16(sampleRate int, freq float64, samples, channels int) []int16 {
	pcm := make([]int16, samples*channels)
	for i := 0; i < samples; i++ {
		val := int16(16384 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		for ch := 0; ch < channels; ch++ {
			pcm[i*channels+ch] = val
		}
	}
	return pcm
}

// computeEnergy computes the RMS energy of an int16 signal.
func computeEnergy(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// TestRoundTrip_Mono_S16 encodes and decodes a sine wave and compares
// signal energy. The codec is lossy, so only energy is checked.
func TestRoundTrip_Mono_S16(t *testing.T) {
	enc, err := NewEncoder(Duration10M, 48000, 0)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	dec, err := NewDecoder(Duration10M, 48000, 0)
	if err != nil {
		t.Fatalf("NewDecoder error: %v", err)
	}
	defer dec.Close()

	pcmIn := generateSineS16(48000, 440, 480, 1)
	inputEnergy := computeEnergy(pcmIn)

	frame := make([]byte, 120)
	pcmOut := make([]int16, 480)

	// Feed several frames so the overlap history settles.
	var outputEnergy float64
	for i := 0; i < 10; i++ {
		if err := enc.EncodeS16(pcmIn, 1, frame); err != nil {
			t.Fatalf("EncodeS16 error: %v", err)
		}
		concealed, err := dec.DecodeS16(frame, pcmOut, 1)
		if err != nil {
			t.Fatalf("DecodeS16 error: %v", err)
		}
		if concealed {
			t.Fatal("normal decode reported as concealed")
		}
		outputEnergy = computeEnergy(pcmOut)
	}

	t.Logf("round-trip: input energy=%.1f, output energy=%.1f", inputEnergy, outputEnergy)
	if outputEnergy < inputEnergy*0.5 || outputEnergy > inputEnergy*2 {
		t.Errorf("output energy %.1f far from input energy %.1f", outputEnergy, inputEnergy)
	}
}

// TestRoundTrip_Deterministic re-runs an identical frame sequence from
// fresh contexts and requires bit-exact results both directions.
func TestRoundTrip_Deterministic(t *testing.T) {
	run := func() ([]byte, []int16) {
		enc, err := NewEncoder(Duration10M, 48000, 0)
		if err != nil {
			t.Fatalf("NewEncoder error: %v", err)
		}
		defer enc.Close()

		dec, err := NewDecoder(Duration10M, 48000, 0)
		if err != nil {
			t.Fatalf("NewDecoder error: %v", err)
		}
		defer dec.Close()

		var frames []byte
		pcm := make([]int16, 480*4)
		for i := 0; i < 4; i++ {
			in := generateSineS16(48000, 440+float64(100*i), 480, 1)
			frame := make([]byte, 100)
			if err := enc.EncodeS16(in, 1, frame); err != nil {
				t.Fatalf("EncodeS16 error: %v", err)
			}
			frames = append(frames, frame...)
			if _, err := dec.DecodeS16(frame, pcm[i*480:(i+1)*480], 1); err != nil {
				t.Fatalf("DecodeS16 error: %v", err)
			}
		}
		return frames, pcm
	}

	frames1, pcm1 := run()
	frames2, pcm2 := run()
	if !bytes.Equal(frames1, frames2) {
		t.Error("encoded frames differ between identical runs")
	}
	for i := range pcm1 {
		if pcm1[i] != pcm2[i] {
			t.Fatalf("decoded sample %d differs between identical runs", i)
		}
	}
}

// TestRoundTrip_InterleavedStereo drives two independent contexts over one
// interleaved buffer using stride.
func TestRoundTrip_InterleavedStereo(t *testing.T) {
	const channels = 2

	encs := make([]*Encoder, channels)
	decs := make([]*Decoder, channels)
	for ch := 0; ch < channels; ch++ {
		enc, err := NewEncoder(Duration10M, 48000, 0)
		if err != nil {
			t.Fatalf("NewEncoder error: %v", err)
		}
		defer enc.Close()
		encs[ch] = enc

		dec, err := NewDecoder(Duration10M, 48000, 0)
		if err != nil {
			t.Fatalf("NewDecoder error: %v", err)
		}
		defer dec.Close()
		decs[ch] = dec
	}

	pcmIn := generateSineS16(48000, 440, 480, channels)
	pcmOut := make([]int16, 480*channels)
	for ch := 0; ch < channels; ch++ {
		frame := make([]byte, 80)
		if err := encs[ch].EncodeS16(pcmIn[ch:], channels, frame); err != nil {
			t.Fatalf("channel %d EncodeS16 error: %v", ch, err)
		}
		if _, err := decs[ch].DecodeS16(frame, pcmOut[ch:], channels); err != nil {
			t.Fatalf("channel %d DecodeS16 error: %v", ch, err)
		}
	}

	if computeEnergy(pcmOut) == 0 {
		t.Error("stereo round-trip produced silence")
	}
}

// TestPLC_AfterLoss decodes a stream with a missing frame in the middle
// and checks the concealment flag tracks exactly the lost frame.
func TestPLC_AfterLoss(t *testing.T) {
	enc, err := NewEncoder(Duration10M, 48000, 0)
	if err != nil {
		t.Fatalf("NewEncoder error: %v", err)
	}
	defer enc.Close()

	dec, err := NewDecoder(Duration10M, 48000, 0)
	if err != nil {
		t.Fatalf("NewDecoder error: %v", err)
	}
	defer dec.Close()

	pcmIn := generateSineS16(48000, 440, 480, 1)
	pcmOut := make([]int16, 480)
	for i := 0; i < 6; i++ {
		frame := make([]byte, 100)
		if err := enc.EncodeS16(pcmIn, 1, frame); err != nil {
			t.Fatalf("EncodeS16 error: %v", err)
		}

		lost := i == 3
		if lost {
			frame = nil
		}
		concealed, err := dec.DecodeS16(frame, pcmOut, 1)
		if err != nil {
			t.Fatalf("DecodeS16 error: %v", err)
		}
		if concealed != lost {
			t.Errorf("frame %d: concealed = %v, want %v", i, concealed, lost)
		}
	}
}
