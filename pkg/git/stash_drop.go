package git

import (
	"fmt"
	"os/exec"
)

// StashDrop drops a stash.
func (g *realGit) StashDrop(repoPath, stashRef string) error {
	name, err := g.resolveStashIndex(repoPath, stashRef)
	if err != nil {
		return err
	}

	cmd := exec.Command("git", "stash", "drop", name)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git stash drop failed: %w (command: git stash drop %s, output: %s)",
			err, name, string(output))
	}
	return nil
}
