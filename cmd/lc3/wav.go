package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// readWAV loads a whole WAV file as interleaved 16-bit samples.
func readWAV(path string) (pcm []int16, sampleRate, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, errors.New("not a WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read PCM data: %w", err)
	}

	return intsToInt16(buf.Data, int(dec.BitDepth)), int(dec.SampleRate), int(dec.NumChans), nil
}

// intsToInt16 narrows decoded samples to 16 bits, shifting down higher
// bit depths.
func intsToInt16(samples []int, bitDepth int) []int16 {
	shift := 0
	if bitDepth > 16 {
		shift = bitDepth - 16
	}
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = int16(s >> shift)
	}
	return pcm
}

// writeWAV stores interleaved 16-bit samples as a PCM WAV file.
func writeWAV(path string, pcm []int16, sampleRate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(pcm)),
	}
	for i, s := range pcm {
		buf.Data[i] = int(s)
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
