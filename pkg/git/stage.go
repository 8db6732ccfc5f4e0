package git

import (
	"fmt"
	"os/exec"
)

// Stage adds files to the Git staging area.
func (g *realGit) Stage(repoPath, path string) error {
	cmd := exec.Command("git", "add", path)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git add failed: %w (command: git add %s, output: %s)",
			err, path, string(output))
	}
	return nil
}
