package git

import (
	"fmt"
	"os/exec"
)

// StashApply applies a stash without dropping it.
func (g *realGit) StashApply(repoPath, stashRef string) error {
	name, err := g.resolveStashIndex(repoPath, stashRef)
	if err != nil {
		return err
	}

	cmd := exec.Command("git", "stash", "apply", name)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git stash apply failed: %w (command: git stash apply %s, output: %s)",
			err, name, string(output))
	}
	return nil
}
