// Package fs provides the file system operations needed around
// worktree directory management.
package fs

import "os"

//go:generate go run go.uber.org/mock/mockgen@latest -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations.
type FS interface {
	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// IsDir checks if a path is a directory.
	IsDir(path string) (bool, error)

	// MkdirAll creates a directory and all missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// IsDirectoryWritable checks whether the directory accepts new entries.
	IsDirectoryWritable(path string) (bool, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
