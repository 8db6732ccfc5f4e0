package executor

import "errors"

// Error definitions for executor package.
var (
	ErrStageFailed   = errors.New("failed to stage files")
	ErrStashFailed   = errors.New("failed to stash changes")
	ErrPushFailed    = errors.New("failed to push local commits")
	ErrCommitFailed  = errors.New("failed to commit changes")
	ErrUnknownAction = errors.New("unknown action kind")
)
