package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// CheckoutNewBranch creates and checks out a new branch from a start point.
func (g *realGit) CheckoutNewBranch(params CheckoutNewBranchParams) error {
	args := []string{"checkout", "-b", params.Branch}
	if params.StartPoint != "" {
		args = append(args, params.StartPoint)
	}

	output, err := g.ExecGit(params.RepoPath, args...)
	if err != nil {
		if isCheckoutConflict(output) {
			return fmt.Errorf("%w: %s", ErrCheckoutConflict, output)
		}
		return fmt.Errorf("git checkout -b failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), output)
	}
	return nil
}

// isCheckoutConflict matches git's error text for checkouts blocked by
// local changes.
func isCheckoutConflict(output string) bool {
	return strings.Contains(output, "would be overwritten by checkout") ||
		strings.Contains(output, "Please commit your changes or stash them")
}

// ExecGit runs a raw git command in the repository.
func (g *realGit) ExecGit(repoPath string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	return string(output), err
}
