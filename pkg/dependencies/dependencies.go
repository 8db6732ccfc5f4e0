// Package dependencies provides a centralized dependency container for
// the prflow application, grouping collaborators together with a fluent
// API for configuration.
package dependencies

import (
	"errors"

	"prflow/pkg/config"
	"prflow/pkg/forge"
	"prflow/pkg/fs"
	"prflow/pkg/git"
	"prflow/pkg/hooks"
	"prflow/pkg/logger"
	"prflow/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing                 = errors.New("fs dependency is required but not set")
	ErrGitMissing                = errors.New("git dependency is required but not set")
	ErrConfigMissing             = errors.New("config dependency is required but not set")
	ErrLoggerMissing             = errors.New("logger dependency is required but not set")
	ErrPromptMissing             = errors.New("prompt dependency is required but not set")
	ErrForgeMissing              = errors.New("forge dependency is required but not set")
	ErrHookRunnerProviderMissing = errors.New("hook runner provider dependency is required but not set")
)

// HookRunnerProvider builds a hook runner for one workflow invocation.
type HookRunnerProvider func(params hooks.NewRunnerParams) hooks.Runner

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS                 fs.FS
	Git                git.Git
	Config             config.Manager
	Logger             logger.Logger
	Prompt             prompt.Prompter
	Forge              forge.ManagerInterface
	HookRunnerProvider HookRunnerProvider
}

// New creates a new Dependencies instance with sensible defaults.
// Config is intentionally left nil as it requires a config path.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:                 fs.NewFS(),
		Git:                git.NewGit(),
		Logger:             log,
		Prompt:             prompt.NewPrompt(),
		Forge:              forge.NewManager(log),
		HookRunnerProvider: hooks.NewRunner,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
// The forge manager keeps its own logger; set it separately if needed.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithForge sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForge(f forge.ManagerInterface) *Dependencies {
	d.Forge = f
	return d
}

// WithHookRunnerProvider sets the hook runner provider and returns the instance for chaining.
func (d *Dependencies) WithHookRunnerProvider(p HookRunnerProvider) *Dependencies {
	d.HookRunnerProvider = p
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Forge, ErrForgeMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}

	if d.HookRunnerProvider == nil {
		return ErrHookRunnerProviderMissing
	}
	return nil
}
