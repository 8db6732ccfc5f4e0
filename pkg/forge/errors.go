package forge

import "errors"

// Forge-specific error types.
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrInvalidRemoteURL = errors.New("invalid remote URL")
	ErrTokenMissing     = errors.New("forge token not set")
	ErrNotAuthenticated = errors.New("forge rejected credentials")
	ErrPRNotFound       = errors.New("pull request not found")
	ErrPRExists         = errors.New("pull request already exists")
	ErrNoCommits        = errors.New("no commits between base and head")
	ErrRateLimited      = errors.New("API rate limit exceeded")
)
