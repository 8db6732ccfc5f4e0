package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetRemoteURL gets the URL configured for a remote.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	cmd := exec.Command("git", "remote", "get-url", remoteName)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s (output: %s)", ErrRemoteNotFound, remoteName, strings.TrimSpace(string(output)))
	}
	return strings.TrimSpace(string(output)), nil
}
