package hooks

import "errors"

var (
	// ErrHookFailed indicates a hook command exited non-zero or timed out.
	ErrHookFailed = errors.New("hook command failed")
	// ErrHookTimeout indicates a hook command exceeded its timeout.
	ErrHookTimeout = errors.New("hook command timed out")
	// ErrUnknownHook indicates a hook point name outside the known set.
	ErrUnknownHook = errors.New("unknown hook name")
)
