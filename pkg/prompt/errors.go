package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrCancelled                = errors.New("selection cancelled")
	ErrNoChoices                = errors.New("no choices available")
	ErrEmptyDescription         = errors.New("description cannot be empty")
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
)
