package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	lc3 "github.com/Vuzix/liblc3"
	"github.com/Vuzix/liblc3/container/lc3bin"
)

type encodeCmd struct {
	Input  string `arg:"" help:"Input WAV file." type:"existingfile"`
	Output string `arg:"" help:"Output .lc3 file."`

	FrameUs int `help:"Frame duration in microseconds." enum:"2500,5000,7500,10000" default:"10000"`
	Bitrate int `help:"Bitrate per channel in bit/s." default:"96000"`
}

func (c *encodeCmd) Run(logger *zap.Logger) error {
	pcm, sampleRate, channels, err := readWAV(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}

	dt := lc3.FrameDuration(c.FrameUs)
	frameBytes, err := lc3.BitrateToFrameBytes(dt, sampleRate, c.Bitrate)
	if err != nil {
		return fmt.Errorf("bitrate %d at %d Hz: %w", c.Bitrate, sampleRate, err)
	}

	encoders := make([]*lc3.Encoder, channels)
	for ch := range encoders {
		enc, err := lc3.NewEncoder(dt, sampleRate, 0)
		if err != nil {
			return fmt.Errorf("encoder setup: %w", err)
		}
		defer enc.Close()
		encoders[ch] = enc
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	w, err := lc3bin.NewWriter(out, lc3bin.Config{
		FrameDuration: dt,
		SampleRate:    sampleRate,
		Bitrate:       c.Bitrate,
		Channels:      channels,
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	frameSamples := encoders[0].FrameSamples()
	logger.Debug("encoding",
		zap.Int("sample_rate", sampleRate),
		zap.Int("channels", channels),
		zap.Int("frame_samples", frameSamples),
		zap.Int("frame_bytes", frameBytes))

	block := make([]byte, frameBytes*channels)
	frame := make([]int16, frameSamples*channels)
	frames := 0
	for off := 0; off < len(pcm); off += frameSamples * channels {
		// Zero-pad the final partial frame.
		n := copy(frame, pcm[off:])
		for i := n; i < len(frame); i++ {
			frame[i] = 0
		}

		for ch, enc := range encoders {
			if err := enc.EncodeS16(frame[ch:], channels, block[ch*frameBytes:(ch+1)*frameBytes]); err != nil {
				return fmt.Errorf("encode frame %d: %w", frames, err)
			}
		}
		if err := w.WriteBlock(block); err != nil {
			return fmt.Errorf("write frame %d: %w", frames, err)
		}
		frames++
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %s: %w", c.Output, err)
	}

	logger.Info("encoded",
		zap.String("output", c.Output),
		zap.Int("frames", frames),
		zap.Int("bytes_per_frame", frameBytes*channels))
	return nil
}
