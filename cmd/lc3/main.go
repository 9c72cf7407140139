// Command lc3 encodes WAV files to LC3 streams and back.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

var cli struct {
	Encode encodeCmd `cmd:"" help:"Encode a WAV file to an LC3 stream."`
	Decode decodeCmd `cmd:"" help:"Decode an LC3 stream to a WAV file."`
	Info   infoCmd   `cmd:"" help:"Print LC3 stream header information."`

	Verbose bool `short:"v" help:"Enable debug logging."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lc3"),
		kong.Description("LC3 (Low Complexity Communication Codec) stream tool."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lc3: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	ctx.FatalIfErrorf(ctx.Run(logger))
}

// newLogger builds the CLI logger: console-friendly output, debug level
// only when asked for.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
