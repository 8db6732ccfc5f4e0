package fs

import (
	"fmt"
	"os"
)

// MkdirAll creates a directory and all missing parents.
func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
