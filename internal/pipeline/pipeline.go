// Package pipeline orchestrates the watermark batch: input discovery, the
// sequential per-file loop, and summary reporting.
package pipeline

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/wb-go/wbf/zlog"

	// Register the webp decoder; webp is a supported input format even though
	// it cannot be re-encoded.
	_ "golang.org/x/image/webp"

	"github.com/aliskhannn/photo-watermark/internal/exifdate"
	"github.com/aliskhannn/photo-watermark/internal/model"
)

// Fatal conditions: only these two stop a run. Everything else is isolated to
// the file it happened on.
var (
	ErrInputNotFound  = errors.New("input path does not exist")
	ErrNoFilesMatched = errors.New("no image files found")
)

// dateExtractor reads a formatted capture date from an image file.
type dateExtractor interface {
	Extract(path string) (date string, ok bool)
}

// renderer draws watermark text onto an image and re-encodes it.
type renderer interface {
	Render(img image.Image, text, filename string) ([]byte, error)
}

// fileStorage persists output bytes.
type fileStorage interface {
	Save(path string, data []byte) error
}

// Pipeline runs the watermark batch strictly sequentially: each image is
// opened, processed, and written before the next one starts. One file's
// failure never halts the loop.
type Pipeline struct {
	extractor dateExtractor
	renderer  renderer
	storage   fileStorage
	now       func() time.Time // injectable clock for the fallback date
}

// New creates a Pipeline from its collaborators.
func New(e dateExtractor, r renderer, s fileStorage) *Pipeline {
	return &Pipeline{extractor: e, renderer: r, storage: s, now: time.Now}
}

// Run executes the batch for inputPath and returns aggregate stats. It fails
// fast with ErrInputNotFound or ErrNoFilesMatched before any processing;
// per-file errors are logged, counted, and skipped.
func (p *Pipeline) Run(inputPath string) (Stats, error) {
	var stats Stats

	files, inputDir, err := Discover(inputPath)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("%w in %s", ErrNoFilesMatched, inputPath)
	}

	outDir := OutputDir(inputDir)
	stats.Total = len(files)
	zlog.Logger.Info().Int("files", stats.Total).Str("output", outDir).Msg("starting watermark run")

	for i, src := range files {
		task := model.Task{
			SourcePath: src,
			OutputPath: filepath.Join(outDir, filepath.Base(src)),
		}

		zlog.Logger.Info().Msgf("[%d/%d] %s", i+1, stats.Total, filepath.Base(src))

		text, err := p.process(task)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("path", src).Msg("failed to process image")
			stats.Failed++
			continue
		}

		zlog.Logger.Info().Str("path", task.OutputPath).Str("watermark", text).Msg("processed")
		stats.Processed++
	}

	zlog.Logger.Info().
		Int("processed", stats.Processed).
		Int("failed", stats.Failed).
		Str("output", outDir).
		Msg("run complete")

	return stats, nil
}

// process handles a single task: decode, extract the capture date (falling
// back to today), render, save. It returns the watermark text it applied.
func (p *Pipeline) process(task model.Task) (string, error) {
	img, err := imaging.Open(task.SourcePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	text, ok := p.extractor.Extract(task.SourcePath)
	if !ok {
		text = p.now().Format(exifdate.DisplayLayout)
		zlog.Logger.Info().Str("path", task.SourcePath).Msg("no capture date in metadata, using current date")
	}

	data, err := p.renderer.Render(img, text, filepath.Base(task.SourcePath))
	if err != nil {
		return "", err
	}

	if err := p.storage.Save(task.OutputPath, data); err != nil {
		return "", err
	}

	return text, nil
}
