// Package config provides configuration management functionality for the prflow application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultHookTimeout is the timeout applied to hook commands that do not request one.
const DefaultHookTimeout = 30 * time.Second

// DefaultHookMaxTimeout caps every hook command timeout, requested or not.
const DefaultHookMaxTimeout = 5 * time.Minute

// Config represents the application configuration.
type Config struct {
	BaseBranch   string                  `yaml:"base_branch"`
	WorktreesDir string                  `yaml:"worktrees_dir"`
	Hooks        map[string]HookCommands `yaml:"hooks"`
	HookDefaults HookDefaults            `yaml:"hook_defaults"`
}

// HookDefaults holds the default and maximum timeouts for hook commands.
type HookDefaults struct {
	Timeout    Duration `yaml:"timeout"`
	MaxTimeout Duration `yaml:"max_timeout"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.BaseBranch == "" {
		return ErrBaseBranchEmpty
	}

	if c.WorktreesDir == "" {
		return ErrWorktreesDirEmpty
	}

	if c.HookDefaults.Timeout <= 0 {
		return ErrHookTimeoutInvalid
	}

	if c.HookDefaults.MaxTimeout < c.HookDefaults.Timeout {
		return ErrHookMaxTimeoutTooSmall
	}

	for name, commands := range c.Hooks {
		if !IsValidHookName(name) {
			return fmt.Errorf("%w: %s", ErrUnknownHookName, name)
		}
		for _, cmd := range commands {
			if strings.TrimSpace(cmd.Command) == "" {
				return fmt.Errorf("%w: hook %s", ErrHookCommandEmpty, name)
			}
		}
	}

	return nil
}

// expandTildes expands tilde prefixes in configuration paths.
func (c *Config) expandTildes() error {
	expanded, err := expandPath(c.WorktreesDir)
	if err != nil {
		return err
	}
	c.WorktreesDir = expanded
	return nil
}

// expandPath expands a leading tilde to the user's home directory.
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~/")), nil
}
