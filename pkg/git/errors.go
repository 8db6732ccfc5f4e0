// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrDetachedHead        = errors.New("HEAD is detached")
	ErrBranchNotFound      = errors.New("branch not found")
	ErrWorktreeExists      = errors.New("worktree already exists")
	ErrStashCreationFailed = errors.New("failed to create stash")
	ErrNotARepository      = errors.New("not a git repository")
	ErrRemoteNotFound      = errors.New("remote not found")

	// ErrCheckoutConflict marks checkout failures caused by local changes
	// that the checkout would overwrite.
	ErrCheckoutConflict = errors.New("local changes would be overwritten by checkout")
)
