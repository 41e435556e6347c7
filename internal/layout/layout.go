// Package layout maps named watermark anchors to pixel coordinates.
package layout

// Anchor is a named watermark position on the image.
type Anchor string

const (
	TopLeft      Anchor = "top-left"
	TopCenter    Anchor = "top-center"
	TopRight     Anchor = "top-right"
	Center       Anchor = "center"
	BottomLeft   Anchor = "bottom-left"
	BottomCenter Anchor = "bottom-center"
	BottomRight  Anchor = "bottom-right"
)

// Margin is the fixed distance in pixels between the text box and any image edge.
const Margin = 20

// All lists every valid anchor, in the order shown in help text.
var All = []Anchor{
	TopLeft, TopCenter, TopRight,
	Center,
	BottomLeft, BottomCenter, BottomRight,
}

// Valid reports whether a is one of the named anchors.
func (a Anchor) Valid() bool {
	for _, v := range All {
		if a == v {
			return true
		}
	}
	return false
}

// Point returns the top-left corner of a textW x textH box placed at the given
// anchor within an imgW x imgH image. An unrecognized anchor is treated as
// bottom-right. Coordinates are not clamped: when the text box is larger than
// the image minus margins, the result may be negative and the text will extend
// past the image edge.
func Point(imgW, imgH, textW, textH int, anchor Anchor) (x, y int) {
	switch anchor {
	case TopLeft:
		return Margin, Margin
	case TopCenter:
		return (imgW - textW) / 2, Margin
	case TopRight:
		return imgW - textW - Margin, Margin
	case Center:
		return (imgW - textW) / 2, (imgH - textH) / 2
	case BottomLeft:
		return Margin, imgH - textH - Margin
	case BottomCenter:
		return (imgW - textW) / 2, imgH - textH - Margin
	default:
		return imgW - textW - Margin, imgH - textH - Margin
	}
}
