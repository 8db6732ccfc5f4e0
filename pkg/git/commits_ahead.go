package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetCommitsAhead lists commits on HEAD that are not on the base ref,
// newest first.
func (g *realGit) GetCommitsAhead(repoPath, baseRef string) ([]CommitSummary, error) {
	cmd := exec.Command("git", "log", "--format=%H%x00%s", baseRef+"..HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w (command: git log %s..HEAD, output: %s)",
			err, baseRef, string(output))
	}

	var commits []CommitSummary
	for _, line := range splitLines(string(output)) {
		hash, subject, found := strings.Cut(line, "\x00")
		if !found {
			continue
		}
		commits = append(commits, CommitSummary{Hash: hash, Subject: subject})
	}

	return commits, nil
}
