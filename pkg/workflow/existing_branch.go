package workflow

import (
	"context"
	"errors"

	"prflow/pkg/config"
	"prflow/pkg/executor"
	"prflow/pkg/forge"
	"prflow/pkg/git"
)

// runExistingBranch handles actions that open a PR for the branch that
// is already checked out. The executor's commit or stash happens on the
// current branch, the branch is pushed if the remote does not have it,
// and an existing open PR is reused instead of failing.
func (s *session) runExistingBranch(ctx context.Context) (*Result, error) {
	current, err := s.deps.Git.GetCurrentBranch(s.repoRoot)
	if errors.Is(err, git.ErrDetachedHead) {
		return nil, &Error{
			Code:       CodeDetachedHead,
			Message:    "HEAD is detached; there is no current branch to open a PR for",
			Suggestion: "check out a branch first",
			cause:      err,
		}
	}
	if err != nil {
		return nil, wrapError(CodeOperationFailed, err, "could not read current branch")
	}
	s.currentBranch = current
	s.runner.UpdateContext(map[string]interface{}{"branchName": current})

	if err := s.hook(config.HookPreBranch); err != nil {
		return nil, err
	}

	execResult, err := executor.Execute(*s.action, s.params.Description, current,
		executor.NewGitDeps(s.deps.Git, s.repoRoot, s.cfg.BaseBranch))
	if err != nil {
		return nil, wrapError(CodeOperationFailed, err, "action %s failed", s.action.Kind)
	}
	s.stashRef = execResult.StashRef
	s.phase = phasePreBranchExecuted

	// No branch is created on this path; the branch hooks still bracket
	// the phase so hook configurations see a uniform lifecycle.
	s.phase = phaseBranched
	if err := s.hook(config.HookPostBranch); err != nil {
		return nil, s.fail(err)
	}
	s.phase = phaseCommitted

	if err := s.pushIfMissing(current); err != nil {
		return nil, s.fail(err)
	}
	s.phase = phasePushed

	pr, err := s.findOrCreatePR(ctx, current)
	if err != nil {
		return nil, s.fail(err)
	}
	s.phase = phasePRCreated

	// The stash set aside before the PR was opened goes back onto the
	// branch now that the existing commits are published.
	if s.stashRef != "" {
		if err := s.deps.Git.StashPop(s.repoRoot, s.stashRef); err != nil {
			s.deps.Logger.Warnf("could not restore stash %s: %v", s.stashRef, err)
			s.deps.Logger.Warnf("recover your changes with: git stash pop %s", s.stashRef)
		} else {
			s.stashRef = ""
		}
	}
	s.phase = phaseDone

	return &Result{
		Success:     true,
		PRNumber:    pr.Number,
		PRURL:       pr.URL,
		Branch:      current,
		Scenario:    string(s.scenario),
		ActionTaken: string(s.action.Kind),
	}, nil
}

// pushIfMissing pushes the branch with upstream tracking when the
// remote does not have it yet, bracketed by the push hooks.
func (s *session) pushIfMissing(branchName string) error {
	onRemote, err := s.deps.Git.BranchExistsOnRemote(git.BranchExistsOnRemoteParams{
		RepoPath:   s.repoRoot,
		RemoteName: "origin",
		Branch:     branchName,
	})
	if err != nil {
		return wrapError(CodeOperationFailed, err, "could not check origin for %s", branchName)
	}

	if err := s.hook(config.HookPrePush); err != nil {
		return err
	}

	if err := s.deps.Git.Push(git.PushParams{
		RepoPath:    s.repoRoot,
		Remote:      "origin",
		Branch:      branchName,
		SetUpstream: !onRemote,
	}); err != nil {
		return wrapError(CodeOperationFailed, err, "push failed")
	}

	return s.hook(config.HookPostPush)
}

// findOrCreatePR reuses an open PR for the branch when one exists, and
// creates one otherwise.
func (s *session) findOrCreatePR(ctx context.Context, head string) (*forge.PullRequest, error) {
	if err := s.hook(config.HookPrePR); err != nil {
		return nil, err
	}

	pr, err := s.client.GetOpenPRForBranch(ctx, head)
	switch {
	case err == nil:
		s.deps.Logger.Logf("reusing open PR #%d for %s", pr.Number, head)
	case errors.Is(err, forge.ErrPRNotFound):
		pr, err = s.client.CreatePR(ctx, forge.CreatePRParams{
			Title: s.params.Description,
			Head:  head,
			Base:  s.cfg.BaseBranch,
		})
		if err != nil {
			return nil, wrapError(CodeForgeAPIError, err, "could not create pull request")
		}
	default:
		return nil, wrapError(CodeForgeAPIError, err, "could not look up open PRs for %s", head)
	}

	s.runner.UpdateContext(map[string]interface{}{
		"prNumber": pr.Number,
		"prUrl":    pr.URL,
	})

	if err := s.hook(config.HookPostPR); err != nil {
		return nil, err
	}
	return pr, nil
}
