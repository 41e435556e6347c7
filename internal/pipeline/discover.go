package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions are the supported input extensions, matched in lower and
// upper case (non-recursive, directly inside the input directory).
var imageExtensions = []string{"jpg", "jpeg", "png", "tiff", "bmp", "webp"}

// Discover resolves inputPath into the list of images to process and the
// directory the output location is derived from. A file path yields exactly
// that file with its parent as input directory; a directory is globbed for
// supported extensions. Matches are deduplicated by cleaned path (the lower-
// and upper-case globs hit the same file twice on case-insensitive
// filesystems) and sorted for a deterministic processing order.
func Discover(inputPath string) (files []string, inputDir string, err error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return nil, "", fmt.Errorf("stat input path: %w", err)
	}

	if !info.IsDir() {
		return []string{inputPath}, filepath.Dir(inputPath), nil
	}

	seen := make(map[string]bool)
	for _, ext := range imageExtensions {
		for _, pattern := range []string{"*." + ext, "*." + strings.ToUpper(ext)} {
			matches, err := filepath.Glob(filepath.Join(inputPath, pattern))
			if err != nil {
				return nil, "", fmt.Errorf("glob %s: %w", pattern, err)
			}
			for _, m := range matches {
				clean := filepath.Clean(m)
				if seen[clean] {
					continue
				}
				seen[clean] = true
				files = append(files, clean)
			}
		}
	}
	sort.Strings(files)

	return files, inputPath, nil
}

// OutputDir derives the output directory for inputDir: a subdirectory named
// after the input directory's base with a _watermark suffix, so repeated runs
// target the same location and overwrite earlier outputs.
func OutputDir(inputDir string) string {
	base := filepath.Base(filepath.Clean(inputDir))
	return filepath.Join(inputDir, base+"_watermark")
}
