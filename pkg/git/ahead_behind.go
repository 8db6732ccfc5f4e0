package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetAheadBehind counts commits HEAD is ahead of and behind the base ref.
func (g *realGit) GetAheadBehind(repoPath, baseRef string) (AheadBehind, error) {
	cmd := exec.Command("git", "rev-list", "--left-right", "--count", baseRef+"...HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return AheadBehind{}, fmt.Errorf("git rev-list failed: %w (command: git rev-list --left-right --count %s...HEAD, output: %s)",
			err, baseRef, string(output))
	}

	// Output format: "<behind>\t<ahead>" relative to the base ref on the left.
	fields := strings.Fields(strings.TrimSpace(string(output)))
	if len(fields) != 2 {
		return AheadBehind{}, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}

	behind, err := strconv.Atoi(fields[0])
	if err != nil {
		return AheadBehind{}, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}

	ahead, err := strconv.Atoi(fields[1])
	if err != nil {
		return AheadBehind{}, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}

	return AheadBehind{Ahead: ahead, Behind: behind}, nil
}
