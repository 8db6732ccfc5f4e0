package git

import (
	"fmt"
	"os/exec"
)

// Commit creates a new commit with the specified message.
func (g *realGit) Commit(params CommitParams) error {
	args := []string{"commit", "-m", params.Message}
	if params.AllowEmpty {
		args = append(args, "--allow-empty")
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git commit failed: %w (command: git commit -m %q, output: %s)",
			err, params.Message, string(output))
	}
	return nil
}
