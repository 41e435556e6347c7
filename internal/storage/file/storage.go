// Package file provides local filesystem storage for watermarked images.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage writes output files under a local directory tree.
type Storage struct{}

// NewStorage creates a new filesystem Storage.
func NewStorage() *Storage {
	return &Storage{}
}

// Save writes data to path, creating missing parent directories. The write
// goes to a uniquely named temp file in the same directory and is renamed into
// place, so an interrupted run never leaves a truncated image behind and
// reruns overwrite previous outputs atomically.
func (s *Storage) Save(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("finalize output file: %w", err)
	}

	return nil
}
