package git

import (
	"fmt"
	"os/exec"
)

// FetchRemote fetches from a specific remote, pruning refs that no
// longer exist there so classification does not see stale branches.
func (g *realGit) FetchRemote(repoPath, remoteName string) error {
	cmd := exec.Command("git", "fetch", "--prune", remoteName)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git fetch failed: %w (command: git fetch --prune %s, output: %s)",
			err, remoteName, string(output))
	}
	return nil
}
