package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsLinkedWorktree reports whether path is a secondary (linked) worktree.
// A linked worktree's git dir lives under the main repository's
// .git/worktrees directory, so --git-dir and --git-common-dir differ.
func (g *realGit) IsLinkedWorktree(path string) (bool, error) {
	gitDir, err := g.revParsePath(path, "--git-dir")
	if err != nil {
		return false, err
	}

	commonDir, err := g.revParsePath(path, "--git-common-dir")
	if err != nil {
		return false, err
	}

	return gitDir != commonDir, nil
}

func (g *realGit) revParsePath(path, flag string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--path-format=absolute", flag)
	cmd.Dir = path
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git rev-parse %s failed: %w (output: %s)", flag, err, string(output))
	}
	return filepath.Clean(strings.TrimSpace(string(output))), nil
}
