// Command photo-watermark stamps each photo's capture date onto a copy of the
// image, writing results to a _watermark directory next to the originals.
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/photo-watermark/internal/config"
	"github.com/aliskhannn/photo-watermark/internal/exifdate"
	"github.com/aliskhannn/photo-watermark/internal/fonts"
	"github.com/aliskhannn/photo-watermark/internal/model"
	"github.com/aliskhannn/photo-watermark/internal/pipeline"
	"github.com/aliskhannn/photo-watermark/internal/processor"
	"github.com/aliskhannn/photo-watermark/internal/storage/file"
)

func main() {
	zlog.Init()

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		zlog.Logger.Error().Err(err).Msg("invalid arguments")
		os.Exit(1)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	spec := model.Spec{
		FontSize: cfg.FontSize,
		Color:    cfg.Color,
		Position: cfg.Position,
	}

	zlog.Logger.Info().
		Str("input", cfg.InputPath).
		Int("font_size", spec.FontSize).
		Str("color", cfg.ColorName).
		Str("position", string(spec.Position)).
		Msg("photo-watermark")

	// Font resolution happens once per run; failures fall through the chain
	// and are logged, never fatal.
	face := fonts.NewResolver(cfg.FontPaths).Face(float64(spec.FontSize))

	p := pipeline.New(
		exifdate.New(),
		processor.New(face, spec),
		file.NewStorage(),
	)

	if _, err := p.Run(cfg.InputPath); err != nil {
		zlog.Logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
