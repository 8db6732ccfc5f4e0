package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// AddWorktree creates a worktree for an existing branch.
func (g *realGit) AddWorktree(params AddWorktreeParams) error {
	cmd := exec.Command("git", "worktree", "add", params.WorktreePath, params.Branch)
	cmd.Dir = params.RepoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		if strings.Contains(string(output), "already exists") {
			return fmt.Errorf("%w: %s", ErrWorktreeExists, params.WorktreePath)
		}
		return fmt.Errorf("git worktree add failed: %w (command: git worktree add %s %s, output: %s)",
			err, params.WorktreePath, params.Branch, string(output))
	}
	return nil
}
