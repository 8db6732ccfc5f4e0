package git

import (
	"os/exec"
)

// BranchExists checks if a branch exists locally.
func (g *realGit) BranchExists(repoPath, branch string) (bool, error) {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	cmd.Dir = repoPath
	if err := cmd.Run(); err != nil {
		// show-ref exits non-zero when the ref is missing
		return false, nil
	}
	return true, nil
}
