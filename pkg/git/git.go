package git

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// FetchRemote fetches from a specific remote.
	FetchRemote(repoPath, remoteName string) error

	// GetCurrentBranch gets the current branch name. Returns ErrDetachedHead
	// when HEAD does not point to a branch.
	GetCurrentBranch(repoPath string) (string, error)

	// GetRepositoryRoot gets the top-level directory of the working tree.
	GetRepositoryRoot(path string) (string, error)

	// GetRepositoryName gets the repository name from remote origin URL with fallback to local path.
	GetRepositoryName(repoPath string) (string, error)

	// GetRemoteURL gets the URL configured for a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// IsLinkedWorktree reports whether path is a secondary (linked) worktree.
	IsLinkedWorktree(path string) (bool, error)

	// GetStagedFiles lists paths with staged changes.
	GetStagedFiles(repoPath string) ([]string, error)

	// GetUnstagedFiles lists paths with unstaged changes, including untracked files.
	GetUnstagedFiles(repoPath string) ([]string, error)

	// GetCommitsAhead lists commits on HEAD that are not on the base ref.
	GetCommitsAhead(repoPath, baseRef string) ([]CommitSummary, error)

	// GetAheadBehind counts commits HEAD is ahead of and behind the base ref.
	GetAheadBehind(repoPath, baseRef string) (AheadBehind, error)

	// BranchExists checks if a branch exists locally.
	BranchExists(repoPath, branch string) (bool, error)

	// BranchExistsOnRemote checks if a branch exists on a specific remote.
	BranchExistsOnRemote(params BranchExistsOnRemoteParams) (bool, error)

	// Stage adds files to the Git staging area.
	Stage(repoPath, path string) error

	// Stash stashes changes and returns the stash reference.
	Stash(params StashParams) (string, error)

	// StashApply applies a stash without dropping it.
	StashApply(repoPath, stashRef string) error

	// StashPop applies a stash and drops it on success.
	StashPop(repoPath, stashRef string) error

	// StashDrop drops a stash.
	StashDrop(repoPath, stashRef string) error

	// Push pushes a branch to a remote.
	Push(params PushParams) error

	// Commit creates a new commit with the specified message.
	Commit(params CommitParams) error

	// CheckoutBranch checks out an existing branch.
	CheckoutBranch(repoPath, branch string) error

	// CheckoutNewBranch creates and checks out a new branch from a start point.
	CheckoutNewBranch(params CheckoutNewBranchParams) error

	// AddWorktree creates a worktree for an existing branch.
	AddWorktree(params AddWorktreeParams) error

	// ExecGit runs a raw git command in the repository.
	ExecGit(repoPath string, args ...string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
