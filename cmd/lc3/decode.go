package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	lc3 "github.com/Vuzix/liblc3"
	"github.com/Vuzix/liblc3/container/lc3bin"
)

type decodeCmd struct {
	Input  string `arg:"" help:"Input .lc3 file." type:"existingfile"`
	Output string `arg:"" help:"Output WAV file."`
}

func (c *decodeCmd) Run(logger *zap.Logger) error {
	in, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := lc3bin.NewReader(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}
	cfg := r.Config()

	decoders := make([]*lc3.Decoder, cfg.Channels)
	for ch := range decoders {
		dec, err := lc3.NewDecoder(cfg.FrameDuration, cfg.SampleRate, 0)
		if err != nil {
			return fmt.Errorf("decoder setup: %w", err)
		}
		defer dec.Close()
		decoders[ch] = dec
	}

	frameSamples := decoders[0].FrameSamples()
	logger.Debug("decoding",
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Int("channels", cfg.Channels),
		zap.Int("frame_samples", frameSamples),
		zap.Uint32("total_samples", r.TotalSamples()))

	var pcm []int16
	frame := make([]int16, frameSamples*cfg.Channels)
	frames, concealedFrames := 0, 0
	for {
		block, err := r.ReadBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read frame %d: %w", frames, err)
		}

		channelFrames, err := splitBlock(block, cfg.Channels)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}
		for ch, dec := range decoders {
			concealed, err := dec.DecodeS16(channelFrames[ch], frame[ch:], cfg.Channels)
			if err != nil {
				return fmt.Errorf("decode frame %d: %w", frames, err)
			}
			if concealed {
				concealedFrames++
			}
		}
		pcm = append(pcm, frame...)
		frames++
	}

	// Trim the zero padding of the final block when the header carries
	// the exact count.
	if total := int(r.TotalSamples()) * cfg.Channels; total > 0 && total < len(pcm) {
		pcm = pcm[:total]
	}

	if err := writeWAV(c.Output, pcm, cfg.SampleRate, cfg.Channels); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}

	if concealedFrames > 0 {
		logger.Warn("frames concealed", zap.Int("count", concealedFrames))
	}
	logger.Info("decoded",
		zap.String("output", c.Output),
		zap.Int("frames", frames),
		zap.Int("samples_per_channel", len(pcm)/cfg.Channels))
	return nil
}

// splitBlock slices one frame block into its per-channel frames. An empty
// block stands for one lost frame interval: every channel gets a nil frame
// so the decoders conceal it.
func splitBlock(block []byte, channels int) ([][]byte, error) {
	frames := make([][]byte, channels)
	if len(block) == 0 {
		return frames, nil
	}
	if len(block)%channels != 0 {
		return nil, errors.New("block size not divisible by channel count")
	}
	per := len(block) / channels
	for ch := 0; ch < channels; ch++ {
		frames[ch] = block[ch*per : (ch+1)*per]
	}
	return frames, nil
}
