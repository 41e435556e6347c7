// Package processor renders the date watermark onto decoded images.
package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/aliskhannn/photo-watermark/internal/layout"
	"github.com/aliskhannn/photo-watermark/internal/model"
)

const (
	// jpegQuality is the fixed quality used when re-encoding JPEG output.
	jpegQuality = 95
	// shadowOffset is how far, in pixels, the shadow sits below and right of the text.
	shadowOffset = 2
)

// Renderer draws watermark text onto images and re-encodes them. The font face
// is resolved once per run and shared across all images; text metrics are
// measured per image since the watermark text varies.
type Renderer struct {
	face font.Face
	spec model.Spec
}

// New creates a Renderer using the given resolved font face and watermark spec.
func New(face font.Face, spec model.Spec) *Renderer {
	return &Renderer{face: face, spec: spec}
}

// Render draws text onto img and returns the image re-encoded in the format
// implied by filename. The source is cloned into an NRGBA canvas first, so
// grayscale and paletted inputs are normalized before drawing. A black shadow
// is drawn offset (+2, +2) under the main text; the shadow stays black even
// when the requested color is black.
func (r *Renderer) Render(img image.Image, text, filename string) ([]byte, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("detect output format: %w", err)
	}

	dc := gg.NewContextForImage(imaging.Clone(img))
	dc.SetFontFace(r.face)

	tw, th := dc.MeasureString(text)
	x, y := layout.Point(dc.Width(), dc.Height(), int(math.Ceil(tw)), int(math.Ceil(th)), r.spec.Position)

	// layout.Point returns the top-left of the text box, while gg anchors on
	// the baseline; ay=1 shifts the baseline down by the text height so the
	// box top lands at y.
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(text, float64(x+shadowOffset), float64(y+shadowOffset), 0, 1)
	dc.SetColor(r.spec.Color)
	dc.DrawStringAnchored(text, float64(x), float64(y), 0, 1)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dc.Image(), format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode watermarked image: %w", err)
	}

	return buf.Bytes(), nil
}
