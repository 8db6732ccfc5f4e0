package hooks

import (
	"context"
	"os/exec"
	"time"
)

type execCommandRunner struct{}

// NewCommandRunner creates a CommandRunner that spawns commands through
// the shell, killed via context cancellation on timeout.
func NewCommandRunner() CommandRunner {
	return &execCommandRunner{}
}

// Run executes a hook command and returns its combined output.
func (e *execCommandRunner) Run(ctx context.Context, command, dir string, env []string) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Env = env
	// Stop waiting on output pipes shortly after the kill so a child
	// holding stdout open cannot block termination.
	cmd.WaitDelay = 2 * time.Second

	output, err := cmd.CombinedOutput()
	return string(output), err
}
