package git

import (
	"fmt"
	"os/exec"
)

// StashPop applies a stash and drops it on success.
func (g *realGit) StashPop(repoPath, stashRef string) error {
	name, err := g.resolveStashIndex(repoPath, stashRef)
	if err != nil {
		return err
	}

	cmd := exec.Command("git", "stash", "pop", name)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git stash pop failed: %w (command: git stash pop %s, output: %s)",
			err, name, string(output))
	}
	return nil
}
