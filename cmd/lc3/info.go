package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Vuzix/liblc3/container/lc3bin"
)

type infoCmd struct {
	Input string `arg:"" help:"Input .lc3 file." type:"existingfile"`
}

func (c *infoCmd) Run(logger *zap.Logger) error {
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

	duration := float64(r.TotalSamples()) / float64(cfg.SampleRate)
	fmt.Printf("frame duration:  %.1f ms\n", float64(cfg.FrameDuration)/1000)
	fmt.Printf("sample rate:     %d Hz\n", cfg.SampleRate)
	fmt.Printf("bitrate:         %d bit/s per channel\n", cfg.Bitrate)
	fmt.Printf("channels:        %d\n", cfg.Channels)
	fmt.Printf("samples:         %d per channel (%.2f s)\n", r.TotalSamples(), duration)
	return nil
}
