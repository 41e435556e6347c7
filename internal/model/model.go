// Package model holds the value types shared across the watermark pipeline.
package model

import (
	"image/color"

	"github.com/aliskhannn/photo-watermark/internal/layout"
)

// Task represents a single image to process: where it is read from and where
// the watermarked copy is written.
type Task struct {
	SourcePath string
	OutputPath string
}

// Spec is the run-wide watermark configuration. It is built once from the CLI
// arguments and shared read-only across all tasks.
type Spec struct {
	FontSize int           // font size in pixels, > 0
	Color    color.NRGBA   // main text color
	Position layout.Anchor // named anchor for text placement
}
