package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Hook point names. The workflow runs each pre-/post- pair around the
// matching phase; cleanup runs only when an error escapes the workflow.
const (
	HookPreAnalyze   = "pre-analyze"
	HookPostAnalyze  = "post-analyze"
	HookPreBranch    = "pre-branch"
	HookPostBranch   = "post-branch"
	HookPreCommit    = "pre-commit"
	HookPostCommit   = "post-commit"
	HookPrePush      = "pre-push"
	HookPostPush     = "post-push"
	HookPrePR        = "pre-pr"
	HookPostPR       = "post-pr"
	HookPreWorktree  = "pre-worktree"
	HookPostWorktree = "post-worktree"
	HookCleanup      = "cleanup"
)

// ValidHookNames returns the closed list of recognized hook points, in
// workflow order.
func ValidHookNames() []string {
	return []string{
		HookPreAnalyze, HookPostAnalyze,
		HookPreBranch, HookPostBranch,
		HookPreCommit, HookPostCommit,
		HookPrePush, HookPostPush,
		HookPrePR, HookPostPR,
		HookPreWorktree, HookPostWorktree,
		HookCleanup,
	}
}

// IsValidHookName reports whether name is a recognized hook point.
func IsValidHookName(name string) bool {
	for _, valid := range ValidHookNames() {
		if name == valid {
			return true
		}
	}
	return false
}

// HookCommand is a single external command configured for a hook point.
type HookCommand struct {
	Command    string   `yaml:"command"`
	Timeout    Duration `yaml:"timeout"`
	ShowOutput bool     `yaml:"show_output"`
}

// HookCommands is the list of commands configured for one hook point.
// In YAML it accepts a scalar command string, a sequence of command
// strings, or a sequence of command mappings with per-command options.
type HookCommands []HookCommand

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HookCommands) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var command string
		if err := value.Decode(&command); err != nil {
			return err
		}
		*h = HookCommands{{Command: command}}
		return nil
	case yaml.SequenceNode:
		commands := make(HookCommands, 0, len(value.Content))
		for _, item := range value.Content {
			var cmd HookCommand
			if item.Kind == yaml.ScalarNode {
				if err := item.Decode(&cmd.Command); err != nil {
					return err
				}
			} else if err := item.Decode(&cmd); err != nil {
				return err
			}
			commands = append(commands, cmd)
		}
		*h = commands
		return nil
	case yaml.MappingNode:
		var cmd HookCommand
		if err := value.Decode(&cmd); err != nil {
			return err
		}
		*h = HookCommands{cmd}
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrHookCommandFormat, value.Line)
	}
}

// Duration wraps time.Duration for YAML parsing of values like "30s".
// Bare numbers are interpreted as seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var seconds int64
	if err := value.Decode(&seconds); err == nil {
		*d = Duration(time.Duration(seconds) * time.Second)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrDurationFormat, s)
	}

	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// AsDuration returns the wrapped time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}
