package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Stash stashes changes and returns the stash reference. The returned
// reference is the stash commit hash, which stays valid even when other
// stashes are pushed afterwards.
func (g *realGit) Stash(params StashParams) (string, error) {
	args := []string{"stash", "push"}
	if params.KeepIndex {
		args = append(args, "--keep-index")
	}
	if params.IncludeUntracked {
		args = append(args, "--include-untracked")
	}
	if params.Message != "" {
		args = append(args, "-m", params.Message)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %w (output: %s)", ErrStashCreationFailed, err, string(output))
	}

	// "No local changes to save" exits zero without creating a stash.
	if strings.Contains(string(output), "No local changes to save") {
		return "", fmt.Errorf("%w: no local changes to save", ErrStashCreationFailed)
	}

	cmd = exec.Command("git", "rev-parse", "refs/stash")
	cmd.Dir = params.RepoPath
	refOutput, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve stash reference: %w", ErrStashCreationFailed, err)
	}

	return strings.TrimSpace(string(refOutput)), nil
}

// resolveStashIndex maps a stash commit hash to its current stash@{N} name.
func (g *realGit) resolveStashIndex(repoPath, stashRef string) (string, error) {
	cmd := exec.Command("git", "stash", "list", "--format=%H")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git stash list failed: %w (output: %s)", err, string(output))
	}

	for i, hash := range splitLines(string(output)) {
		if hash == stashRef {
			return fmt.Sprintf("stash@{%d}", i), nil
		}
	}

	// Accept stash@{N} style references directly.
	if strings.HasPrefix(stashRef, "stash@{") {
		return stashRef, nil
	}

	return "", fmt.Errorf("stash %s not found", stashRef)
}
