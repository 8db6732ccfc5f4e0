package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetCurrentBranch gets the current branch name. Returns ErrDetachedHead
// when HEAD does not point to a branch.
func (g *realGit) GetCurrentBranch(repoPath string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git rev-parse failed: %w (command: git rev-parse --abbrev-ref HEAD, output: %s)",
			err, string(output))
	}

	branch := strings.TrimSpace(string(output))
	if branch == "HEAD" {
		return "", ErrDetachedHead
	}

	return branch, nil
}
