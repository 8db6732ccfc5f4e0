package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// SetupTestRepo creates a temporary git repository for testing and
// returns its path.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := t.TempDir()

	runTestGit(t, repoPath, "init", "-b", "main")
	runTestGit(t, repoPath, "config", "user.name", "Test User")
	runTestGit(t, repoPath, "config", "user.email", "test@example.com")
	runTestGit(t, repoPath, "remote", "add", "origin", "https://github.com/octocat/Hello-World.git")

	WriteTestFile(t, repoPath, "README.md", "# Test Repository\n")
	runTestGit(t, repoPath, "add", "README.md")
	runTestGit(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// WriteTestFile writes a file into the test repository.
func WriteTestFile(t *testing.T, repoPath, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", name, err)
	}
}

// runTestGit runs a git command in the test repository, failing the test on error.
func runTestGit(t *testing.T, repoPath string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, string(output))
	}
	return string(output)
}
