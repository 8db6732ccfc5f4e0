package git

import (
	"fmt"
	"os/exec"
)

// Push pushes a branch to a remote.
func (g *realGit) Push(params PushParams) error {
	args := []string{"push"}
	if params.SetUpstream {
		args = append(args, "-u")
	}
	args = append(args, params.Remote, params.Branch)

	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git push failed: %w (command: git push %s %s, output: %s)",
			err, params.Remote, params.Branch, string(output))
	}
	return nil
}
