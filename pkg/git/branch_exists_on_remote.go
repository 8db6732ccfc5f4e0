package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// BranchExistsOnRemote checks if a branch exists on a specific remote.
// The ref is fully qualified so the lookup cannot match a partial name.
func (g *realGit) BranchExistsOnRemote(params BranchExistsOnRemoteParams) (bool, error) {
	ref := "refs/heads/" + params.Branch
	cmd := exec.Command("git", "ls-remote", "--heads", params.RemoteName, ref)
	cmd.Dir = params.RepoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("git ls-remote failed: %w (command: git ls-remote --heads %s %s, output: %s)",
			err, params.RemoteName, ref, string(output))
	}
	return strings.TrimSpace(string(output)) != "", nil
}
