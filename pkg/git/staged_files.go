package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetStagedFiles lists paths with staged changes.
func (g *realGit) GetStagedFiles(repoPath string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-only", "--cached")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git diff --cached failed: %w (output: %s)", err, string(output))
	}
	return splitLines(string(output)), nil
}

// splitLines splits command output into non-empty trimmed lines.
func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
