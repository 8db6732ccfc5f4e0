package git

// CommitSummary describes one local commit not yet on the remote base.
type CommitSummary struct {
	Hash    string
	Subject string
}

// AheadBehind counts commits between HEAD and a base ref.
type AheadBehind struct {
	Ahead  int
	Behind int
}

// BranchExistsOnRemoteParams contains parameters for BranchExistsOnRemote.
type BranchExistsOnRemoteParams struct {
	RepoPath   string
	RemoteName string
	Branch     string
}

// StashParams contains parameters for Stash.
type StashParams struct {
	RepoPath string
	Message  string
	// KeepIndex stashes working tree changes while leaving the index staged.
	KeepIndex bool
	// IncludeUntracked includes untracked files in the stash.
	IncludeUntracked bool
}

// PushParams contains parameters for Push.
type PushParams struct {
	RepoPath string
	Remote   string
	Branch   string
	// SetUpstream passes -u so the branch tracks the remote.
	SetUpstream bool
}

// CommitParams contains parameters for Commit.
type CommitParams struct {
	RepoPath   string
	Message    string
	AllowEmpty bool
}

// CheckoutNewBranchParams contains parameters for CheckoutNewBranch.
type CheckoutNewBranchParams struct {
	RepoPath string
	Branch   string
	// StartPoint is the ref to branch from; empty means HEAD.
	StartPoint string
}

// AddWorktreeParams contains parameters for AddWorktree.
type AddWorktreeParams struct {
	RepoPath     string
	WorktreePath string
	Branch       string
}
