package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// GetRepositoryName gets the repository name from remote origin URL with fallback to local path.
func (g *realGit) GetRepositoryName(repoPath string) (string, error) {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err == nil {
		if name := repoNameFromURL(strings.TrimSpace(string(output))); name != "" {
			return name, nil
		}
	}

	// Fallback: repository directory name
	root, err := g.GetRepositoryRoot(repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to determine repository name: %w", err)
	}
	return filepath.Base(root), nil
}

// repoNameFromURL extracts the trailing repository name from a remote URL.
func repoNameFromURL(url string) string {
	url = strings.TrimSuffix(url, ".git")
	url = strings.TrimSuffix(url, "/")

	// SSH format: git@host:user/repo
	if at := strings.Index(url, "@"); at >= 0 && strings.Contains(url, ":") && !strings.HasPrefix(url, "http") {
		if colon := strings.Index(url, ":"); colon > at {
			url = url[colon+1:]
		}
	}

	parts := strings.Split(url, "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
