package git

import (
	"fmt"
	"os/exec"
)

// GetUnstagedFiles lists paths with unstaged changes, including untracked files.
func (g *realGit) GetUnstagedFiles(repoPath string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-only")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w (output: %s)", err, string(output))
	}
	files := splitLines(string(output))

	untracked, err := g.getUntrackedFiles(repoPath)
	if err != nil {
		return nil, err
	}

	return append(files, untracked...), nil
}

func (g *realGit) getUntrackedFiles(repoPath string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--others", "--exclude-standard")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w (output: %s)", err, string(output))
	}
	return splitLines(string(output)), nil
}
