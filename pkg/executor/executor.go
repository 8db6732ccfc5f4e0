// Package executor performs the pre-branch side effects of a chosen
// remediation action.
package executor

import (
	"fmt"

	"prflow/pkg/catalog"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=executor.go -destination=mocks/executor.gen.go -package=mocks

// StashOptions parametrize a Deps.Stash call.
type StashOptions struct {
	Message string
	// KeepIndex stashes working tree changes while leaving the index staged.
	KeepIndex bool
	// IncludeUntracked includes untracked files in the stash.
	IncludeUntracked bool
}

// PushOptions parametrize a Deps.Push call.
type PushOptions struct {
	Remote string
	Branch string
}

// CommitOptions parametrize a Deps.Commit call.
type CommitOptions struct {
	Message    string
	AllowEmpty bool
}

// Deps is the narrow set of git mutations the executor may perform. The
// executor decides which of these to call and in what order; it performs
// no direct I/O itself.
type Deps interface {
	Stage(path string) error
	Stash(opts StashOptions) (string, error)
	Push(opts PushOptions) error
	Commit(opts CommitOptions) error
}

// Result reports the outcome of executing an action. StashRef is non-empty
// only for actions that create a stash; it is the handle the workflow must
// restore on failure.
type Result struct {
	Success  bool
	StashRef string
	Message  string
}

// Execute performs the pre-branch side effects for an action. Any error
// from a dependency call is returned with a failed result, never
// swallowed.
func Execute(action catalog.StateAction, description, branchName string, deps Deps) (*Result, error) {
	switch action.Kind {
	case catalog.ActionEmptyCommit, catalog.ActionCommitStaged,
		catalog.ActionUseCommits, catalog.ActionBranchFromDetached,
		catalog.ActionCreatePRForBranch, catalog.ActionContinueAnyway:
		// No pre-branch effect. Staged files (if any) are committed after
		// branch creation by the workflow.
		return &Result{Success: true}, nil

	case catalog.ActionCommitAll, catalog.ActionUseCommitsCommitAll:
		if err := deps.Stage("."); err != nil {
			return failed(err), fmt.Errorf("%w: %w", ErrStageFailed, err)
		}
		return &Result{Success: true}, nil

	case catalog.ActionStashAndEmpty, catalog.ActionUseCommitsStash:
		ref, err := deps.Stash(StashOptions{
			Message:          stashMessage(branchName),
			IncludeUntracked: true,
		})
		if err != nil {
			return failed(err), fmt.Errorf("%w: %w", ErrStashFailed, err)
		}
		return &Result{Success: true, StashRef: ref}, nil

	case catalog.ActionPushThenBranch:
		// Land the local commits on the remote base before branching. An
		// empty Branch pushes the configured base branch.
		if err := deps.Push(PushOptions{Remote: "origin"}); err != nil {
			return failed(err), fmt.Errorf("%w: %w", ErrPushFailed, err)
		}
		return &Result{Success: true}, nil

	case catalog.ActionPRForBranchCommitAll:
		// The current branch is kept; commit everything on it now.
		if err := deps.Stage("."); err != nil {
			return failed(err), fmt.Errorf("%w: %w", ErrStageFailed, err)
		}
		if err := deps.Commit(CommitOptions{Message: description}); err != nil {
			return failed(err), fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
		return &Result{Success: true}, nil

	case catalog.ActionPRForBranchStash:
		ref, err := deps.Stash(StashOptions{
			Message:          stashMessage(branchName),
			IncludeUntracked: true,
		})
		if err != nil {
			return failed(err), fmt.Errorf("%w: %w", ErrStashFailed, err)
		}
		return &Result{Success: true, StashRef: ref}, nil
	}

	return failed(nil), fmt.Errorf("%w: %s", ErrUnknownAction, action.Kind)
}

func failed(err error) *Result {
	r := &Result{Success: false}
	if err != nil {
		r.Message = err.Error()
	}
	return r
}

func stashMessage(branchName string) string {
	return fmt.Sprintf("prflow: auto-stash before creating %s", branchName)
}
