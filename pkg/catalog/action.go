// Package catalog maps classified scenarios to remediation actions.
package catalog

// ActionKind tags a remediation action.
type ActionKind string

// The fixed action catalog.
const (
	ActionEmptyCommit          ActionKind = "empty_commit"
	ActionCommitStaged         ActionKind = "commit_staged"
	ActionCommitAll            ActionKind = "commit_all"
	ActionStashAndEmpty        ActionKind = "stash_and_empty"
	ActionUseCommits           ActionKind = "use_commits"
	ActionBranchFromDetached   ActionKind = "branch_from_detached"
	ActionUseCommitsCommitAll  ActionKind = "use_commits_and_commit_all"
	ActionUseCommitsStash      ActionKind = "use_commits_and_stash"
	ActionPushThenBranch       ActionKind = "push_then_branch"
	ActionCreatePRForBranch    ActionKind = "create_pr_for_branch"
	ActionPRForBranchCommitAll ActionKind = "pr_for_branch_commit_all"
	ActionPRForBranchStash     ActionKind = "pr_for_branch_stash"
	ActionContinueAnyway       ActionKind = "continue_anyway"
)

// BranchFrom selects the commit a new branch starts from.
type BranchFrom string

// Branch start points.
const (
	BranchFromOriginMain BranchFrom = "origin_main"
	BranchFromHead       BranchFrom = "head"
)

// StateAction is an immutable remediation choice produced by the catalog
// and consumed by the executor.
type StateAction struct {
	Kind          ActionKind
	BranchFrom    BranchFrom
	StashUnstaged bool
}

// UsesCurrentBranch reports whether the action keeps the current branch
// rather than creating a new one.
func (a StateAction) UsesCurrentBranch() bool {
	switch a.Kind {
	case ActionCreatePRForBranch, ActionPRForBranchCommitAll, ActionPRForBranchStash:
		return true
	default:
		return false
	}
}
