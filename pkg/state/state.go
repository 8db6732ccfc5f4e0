// Package state models a snapshot of repository state and classifies it
// into the workflow scenarios.
package state

// WorktreeKind distinguishes the primary checkout from a linked PR worktree.
type WorktreeKind string

// Worktree kinds.
const (
	WorktreeMain WorktreeKind = "main_worktree"
	WorktreePR   WorktreeKind = "pr_worktree"
)

// BranchKind classifies the checked-out branch.
type BranchKind string

// Branch kinds.
const (
	BranchMain     BranchKind = "main"
	BranchFeature  BranchKind = "feature"
	BranchDetached BranchKind = "detached"
)

// CommitRelationship relates HEAD to the remote base branch.
type CommitRelationship string

// Commit relationships.
const (
	RelationshipSame     CommitRelationship = "same"
	RelationshipAhead    CommitRelationship = "ahead"
	RelationshipDiverged CommitRelationship = "diverged"
	RelationshipAncestor CommitRelationship = "ancestor"
)

// TreeStatus describes staged/unstaged changes in the working tree.
type TreeStatus string

// Working tree statuses.
const (
	TreeClean       TreeStatus = "clean"
	TreeHasStaged   TreeStatus = "has_staged"
	TreeHasUnstaged TreeStatus = "has_unstaged"
	TreeHasBoth     TreeStatus = "has_both"
)

// CommitSummary describes one local commit not yet on the remote base.
type CommitSummary struct {
	Hash    string
	Subject string
}

// GitState is a read-only snapshot of repository state, created once per
// invocation and consumed by Classify.
type GitState struct {
	WorktreeKind       WorktreeKind
	BranchKind         BranchKind
	CurrentBranch      string // empty only when detached
	CommitRelationship CommitRelationship
	WorkingTreeStatus  TreeStatus
	LocalCommits       []CommitSummary
	StagedFiles        []string
	UnstagedFiles      []string
	RepoRoot           string
	RepoName           string
}

// TreeStatusFor derives the working tree status from the staged and
// unstaged file lists. GitState.WorkingTreeStatus must always agree with
// this derivation.
func TreeStatusFor(stagedFiles, unstagedFiles []string) TreeStatus {
	hasStaged := len(stagedFiles) > 0
	hasUnstaged := len(unstagedFiles) > 0

	switch {
	case hasStaged && hasUnstaged:
		return TreeHasBoth
	case hasStaged:
		return TreeHasStaged
	case hasUnstaged:
		return TreeHasUnstaged
	default:
		return TreeClean
	}
}

// HasChanges reports whether any staged or unstaged changes exist.
func (s *GitState) HasChanges() bool {
	return s.WorkingTreeStatus != TreeClean
}
