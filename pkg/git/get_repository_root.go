package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetRepositoryRoot gets the top-level directory of the working tree.
func (g *realGit) GetRepositoryRoot(path string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = path
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s (output: %s)", ErrNotARepository, path, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}
