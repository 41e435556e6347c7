// Package exifdate reads a photo's capture date from its EXIF metadata.
package exifdate

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/wb-go/wbf/zlog"
)

// exifLayout is the timestamp format EXIF stores dates in.
const exifLayout = "2006:01:02 15:04:05"

// DisplayLayout is the format watermark dates are rendered in.
const DisplayLayout = "2006年01月02日"

// Extractor reads capture dates from image files.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the capture date of the image at path, formatted with
// DisplayLayout, preferring DateTimeOriginal over DateTime. It returns
// ok=false when the file has no EXIF container, no usable timestamp tag, or
// any read error occurs; metadata failures are logged, never propagated.
func (e *Extractor) Extract(path string) (date string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("path", path).Msg("cannot open file for metadata")
		return "", false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		zlog.Logger.Debug().Err(err).Str("path", path).Msg("no EXIF metadata")
		return "", false
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		s, found := tagString(x, field)
		if !found {
			continue
		}
		t, err := time.ParseInLocation(exifLayout, s, time.Local)
		if err != nil {
			zlog.Logger.Debug().Str("path", path).Str("value", s).Msgf("unparseable %s tag", field)
			continue
		}
		return t.Format(DisplayLayout), true
	}

	return "", false
}

// tagString fetches a tag and returns its string value, if both exist.
func tagString(x *exif.Exif, field exif.FieldName) (string, bool) {
	tag, err := x.Get(field)
	if err != nil {
		return "", false
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	return s, true
}
