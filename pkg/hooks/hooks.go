// Package hooks runs user-configured external commands at named points
// of the workflow, gating progress and accumulating a shared context.
package hooks

import "context"

//go:generate go run go.uber.org/mock/mockgen@latest -source=hooks.go -destination=mocks/hooks.gen.go -package=mocks

// Runner sequences hook execution around the workflow phases.
type Runner interface {
	// RunHook runs every command configured for a hook point, in order.
	// A nil return means proceed; a wrapped ErrHookFailed means abort.
	// Unconfigured points succeed without spawning anything.
	RunHook(name string) error

	// UpdateContext merges fields into the shared hook context,
	// last-write-wins per key.
	UpdateContext(partial map[string]interface{})

	// RunCleanup runs the cleanup hook with the failure recorded in the
	// context. It never fails the caller: cleanup must not mask the
	// original error.
	RunCleanup(err error)

	// HasConfiguredHooks reports whether any hook point has commands.
	HasConfiguredHooks() bool

	// ConfiguredHooks lists the hook points with commands, in workflow order.
	ConfiguredHooks() []string
}

// CommandRunner spawns one external hook command. The context carries
// the command's timeout; implementations must kill the subprocess when
// it expires.
type CommandRunner interface {
	Run(ctx context.Context, command, dir string, env []string) (output string, err error)
}
