package fs

import (
	"os"
	"path/filepath"
)

// IsDirectoryWritable checks whether the directory accepts new entries
// by probing with a temporary file.
func (f *realFS) IsDirectoryWritable(path string) (bool, error) {
	testFile := filepath.Join(path, ".prflow_write_probe")
	file, err := os.Create(testFile)
	if err != nil {
		return false, err
	}
	_ = file.Close()
	_ = os.Remove(testFile)
	return true, nil
}
