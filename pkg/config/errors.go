package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("prflow configuration not found. Run 'prflow init' to initialize")

	// Configuration validation errors.
	ErrBaseBranchEmpty        = errors.New("base_branch cannot be empty")
	ErrWorktreesDirEmpty      = errors.New("worktrees_dir cannot be empty")
	ErrHookTimeoutInvalid     = errors.New("hook_defaults.timeout must be positive")
	ErrHookMaxTimeoutTooSmall = errors.New("hook_defaults.max_timeout cannot be smaller than hook_defaults.timeout")
	ErrUnknownHookName        = errors.New("unknown hook point")
	ErrHookCommandEmpty       = errors.New("hook command cannot be empty")
	ErrHookCommandFormat      = errors.New("hook commands must be a string, list, or mapping")
	ErrDurationFormat         = errors.New("invalid duration")
)
