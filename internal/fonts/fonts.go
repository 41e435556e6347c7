// Package fonts resolves a usable font face for watermark rendering.
//
// Resolution tries the configured TTF paths in order, then an embedded copy of
// Go Regular at the requested size, then a fixed-size bitmap face. The chain
// never fails: callers always get a drawable face, at worst one whose size does
// not match the request.
//
// None of the default faces carry CJK glyphs, so the 年月日 characters of the
// date format render as replacement boxes unless a CJK-capable TTF is put on
// the search path (the original tool's Arial chain had the same limitation).
package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Resolver loads the first usable font face from its search paths.
type Resolver struct {
	paths []string
}

// NewResolver creates a Resolver over the given TTF file paths, tried in order.
func NewResolver(paths []string) *Resolver {
	return &Resolver{paths: paths}
}

// Face returns a font face at the requested pixel size. Unreadable or
// unparseable path entries are skipped; when no path yields a face the
// embedded Go Regular font is used at the same size, which keeps output
// deterministic across hosts. The fallback is logged once per call.
func (r *Resolver) Face(size float64) font.Face {
	for _, path := range r.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			zlog.Logger.Debug().Err(err).Str("font", path).Msg("font path not readable")
			continue
		}
		ft, err := truetype.Parse(data)
		if err != nil {
			zlog.Logger.Debug().Err(err).Str("font", path).Msg("font not parseable")
			continue
		}
		return truetype.NewFace(ft, &truetype.Options{Size: size})
	}

	zlog.Logger.Warn().Msg("no system font found, using embedded Go Regular")
	ft, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// Should be unreachable: the embedded font is known-good.
		zlog.Logger.Warn().Err(err).Msg("embedded font unusable, using fixed-size bitmap face")
		return basicfont.Face7x13
	}
	return truetype.NewFace(ft, &truetype.Options{Size: size})
}

// DefaultPaths returns the platform's conventional font locations for the
// given OS (a runtime.GOOS value), in resolution priority order.
func DefaultPaths(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
		}
	case "windows":
		return []string{
			`C:\Windows\Fonts\arial.ttf`,
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/freefont/FreeMono.ttf",
		}
	}
}
