package branch

import "errors"

// Branch naming error types.
var (
	ErrBranchNameEmpty                  = errors.New("branch name cannot be empty")
	ErrBranchNameSingleAt               = errors.New("branch name cannot be the single character @")
	ErrBranchNameContainsAtBrace        = errors.New("branch name cannot contain the sequence @{")
	ErrBranchNameContainsBackslash      = errors.New("branch name cannot contain backslash")
	ErrBranchNameEmptyAfterSanitization = errors.New("branch name becomes empty after sanitization")
)
