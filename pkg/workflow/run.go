package workflow

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"prflow/pkg/branch"
	"prflow/pkg/catalog"
	"prflow/pkg/config"
	"prflow/pkg/dependencies"
	"prflow/pkg/executor"
	"prflow/pkg/forge"
	"prflow/pkg/git"
	"prflow/pkg/hooks"
	"prflow/pkg/prompt"
	"prflow/pkg/state"
)

// session carries the state of one workflow invocation.
type session struct {
	deps   *dependencies.Dependencies
	params RunParams

	cfg        config.Config
	repoRoot   string
	branchName string
	client     forge.Client
	runner     hooks.Runner

	phase         phase
	snap          *state.GitState
	scenario      state.Scenario
	action        *catalog.StateAction
	currentBranch string
	stashRef      string
	unstagedStash string
}

// Run executes the full sequence and returns a structured result.
func (w *realWorkflow) Run(ctx context.Context, params RunParams) (*Result, error) {
	if err := w.deps.Validate(); err != nil {
		return nil, wrapError(CodeUnknown, err, "dependency container incomplete")
	}

	if strings.TrimSpace(params.Description) == "" {
		return nil, newError(CodeInvalidArgument, "a change description is required")
	}

	cfg, err := w.deps.Config.GetConfigWithFallback()
	if err != nil {
		return nil, wrapError(CodeInvalidArgument, err, "could not load configuration")
	}
	if params.BaseBranch != "" {
		cfg.BaseBranch = params.BaseBranch
	}

	repoRoot, err := w.deps.Git.GetRepositoryRoot(params.RepoPath)
	if err != nil {
		return nil, &Error{
			Code:       CodeOperationFailed,
			Message:    fmt.Sprintf("%s is not inside a git repository", params.RepoPath),
			Suggestion: "run prflow from inside the repository you want to open a PR for",
			cause:      err,
		}
	}

	branchName, err := resolveBranchName(params)
	if err != nil {
		return nil, wrapError(CodeInvalidArgument, err, "invalid branch name")
	}

	client, err := w.forgeClient(ctx, repoRoot)
	if err != nil {
		return nil, err
	}

	runner := w.deps.HookRunnerProvider(hooks.NewRunnerParams{
		Hooks:    cfg.Hooks,
		Defaults: cfg.HookDefaults,
		Dir:      repoRoot,
		Logger:   w.deps.Logger,
		Disabled: params.NoHooks,
	})
	runner.UpdateContext(map[string]interface{}{
		"repoRoot":    repoRoot,
		"baseBranch":  cfg.BaseBranch,
		"description": params.Description,
		"branchName":  branchName,
	})

	s := &session{
		deps:       w.deps,
		params:     params,
		cfg:        cfg,
		repoRoot:   repoRoot,
		branchName: branchName,
		client:     client,
		runner:     runner,
	}

	result, err := s.run(ctx)
	if err != nil {
		return nil, AsError(err)
	}
	return result, nil
}

// forgeClient selects the forge by remote URL and verifies credentials
// before any workflow step runs.
func (w *realWorkflow) forgeClient(ctx context.Context, repoRoot string) (forge.Client, error) {
	remoteURL, err := w.deps.Git.GetRemoteURL(repoRoot, "origin")
	if err != nil {
		return nil, &Error{
			Code:       CodeOperationFailed,
			Message:    "repository has no origin remote",
			Suggestion: "add a remote with: git remote add origin <url>",
			cause:      err,
		}
	}

	client, err := w.deps.Forge.ClientFor(remoteURL)
	if err != nil {
		return nil, wrapError(CodeOperationFailed, err, "no supported forge for %s", remoteURL)
	}

	if err := client.CheckAuth(ctx); err != nil {
		switch {
		case errors.Is(err, forge.ErrTokenMissing):
			return nil, &Error{
				Code:       CodeTokenMissing,
				Message:    fmt.Sprintf("no %s credentials configured", client.Name()),
				Suggestion: "export an access token (GITHUB_TOKEN or GITLAB_TOKEN)",
				cause:      err,
			}
		case errors.Is(err, forge.ErrNotAuthenticated):
			return nil, &Error{
				Code:       CodeNotAuthenticated,
				Message:    fmt.Sprintf("%s rejected the configured token", client.Name()),
				Suggestion: "verify the token is valid and has repository scope",
				cause:      err,
			}
		default:
			return nil, wrapError(CodeForgeAPIError, err, "could not verify %s credentials", client.Name())
		}
	}

	return client, nil
}

// resolveBranchName sanitizes an explicit branch name or derives one
// from the description.
func resolveBranchName(params RunParams) (string, error) {
	if params.Branch != "" {
		return branch.Sanitize(params.Branch)
	}
	return branch.FromDescription(params.Description)
}

// run walks the phases. Failures after the executor has run pass
// through fail, which performs the rollback sequence.
func (s *session) run(ctx context.Context) (*Result, error) {
	s.phase = phaseStart

	// A fetch failure is non-fatal: the network may be unavailable, so
	// proceed on stale local refs with a warning.
	if err := s.deps.Git.FetchRemote(s.repoRoot, "origin"); err != nil {
		s.deps.Logger.Warnf("fetch failed, classifying against stale refs: %v", err)
	}
	s.phase = phaseFetched

	if err := s.classify(); err != nil {
		return nil, err
	}
	s.phase = phaseClassified

	if err := s.selectAction(); err != nil {
		return nil, err
	}
	s.phase = phaseActionSelected
	s.runner.UpdateContext(map[string]interface{}{"action": string(s.action.Kind)})

	if s.action.UsesCurrentBranch() {
		return s.runExistingBranch(ctx)
	}
	return s.runNewBranch(ctx)
}

// classify snapshots the repository and runs the classifier, bracketed
// by the analyze hooks.
func (s *session) classify() error {
	if err := s.hook(config.HookPreAnalyze); err != nil {
		return err
	}

	snap, err := state.NewSnapshot(s.deps.Git, s.repoRoot, s.cfg.BaseBranch)
	if err != nil {
		return wrapError(CodeOperationFailed, err, "could not read repository state")
	}
	s.snap = snap
	s.scenario = state.Classify(snap)
	s.runner.UpdateContext(map[string]interface{}{"scenario": string(s.scenario)})

	return s.hook(config.HookPostAnalyze)
}

// selectAction resolves the catalog choice for the classified scenario,
// interactively or by the non-interactive rules.
func (s *session) selectAction() error {
	for {
		choices := catalog.ChoicesFor(s.scenario, s.snap, s.cfg.BaseBranch)

		if s.scenario == state.ScenarioPRWorktree && s.params.NonInteractive {
			return &Error{
				Code:       CodeInvalidAction,
				Message:    "refusing to run non-interactively from a PR worktree",
				Suggestion: "run interactively to confirm, or switch to the main checkout",
			}
		}

		action, err := s.pickAction(choices)
		if err != nil {
			return err
		}

		if action.Kind != catalog.ActionContinueAnyway {
			s.action = action
			return nil
		}

		// Continue anyway: re-snapshot and re-classify. The worktree
		// flag is what the user just waved through, so classification
		// proceeds on the remaining fields.
		snap, err := state.NewSnapshot(s.deps.Git, s.repoRoot, s.cfg.BaseBranch)
		if err != nil {
			return wrapError(CodeOperationFailed, err, "could not re-read repository state")
		}
		if snap.WorktreeKind == state.WorktreePR {
			snap.WorktreeKind = state.WorktreeMain
		}
		s.snap = snap
		s.scenario = state.Classify(snap)
		s.runner.UpdateContext(map[string]interface{}{"scenario": string(s.scenario)})
	}
}

// pickAction picks one action from the catalog entry: the user's choice
// in interactive mode, else the caller-named action or the catalog's
// first non-nil choice.
func (s *session) pickAction(choices catalog.Choices) (*catalog.StateAction, error) {
	if !s.params.NonInteractive {
		action, err := s.deps.Prompt.SelectAction(choices)
		if errors.Is(err, prompt.ErrCancelled) {
			return nil, newError(CodeUserCancelled, "cancelled")
		}
		if err != nil {
			return nil, wrapError(CodeUnknown, err, "action selection failed")
		}
		return action, nil
	}

	if s.params.Action != "" {
		action := choices.FindAction(catalog.ActionKind(s.params.Action))
		if action == nil {
			return nil, newError(CodeInvalidAction,
				"action %q is not available for scenario %s; available: %s",
				s.params.Action, s.scenario, kindList(choices.AvailableKinds()))
		}
		return action, nil
	}

	action := choices.DefaultAction()
	if action == nil {
		return nil, newError(CodeInvalidAction,
			"scenario %s offers no non-interactive action", s.scenario)
	}
	return action, nil
}

func kindList(kinds []catalog.ActionKind) string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

// runNewBranch is the new-branch path: executor, optional unstaged
// stash, branch, commit, push, PR, worktree, unstaged restore.
func (s *session) runNewBranch(ctx context.Context) (*Result, error) {
	current, err := s.deps.Git.GetCurrentBranch(s.repoRoot)
	switch {
	case errors.Is(err, git.ErrDetachedHead):
		if s.action.Kind != catalog.ActionBranchFromDetached {
			return nil, &Error{
				Code:       CodeDetachedHead,
				Message:    "HEAD is detached and the chosen action needs a current branch",
				Suggestion: "check out a branch first, or pick the detached-head action interactively",
				cause:      err,
			}
		}
	case err != nil:
		return nil, wrapError(CodeOperationFailed, err, "could not read current branch")
	default:
		s.currentBranch = current
	}

	if err := s.hook(config.HookPreBranch); err != nil {
		return nil, err
	}

	execResult, err := executor.Execute(*s.action, s.params.Description, s.branchName,
		executor.NewGitDeps(s.deps.Git, s.repoRoot, s.cfg.BaseBranch))
	if err != nil {
		return nil, wrapError(CodeOperationFailed, err, "action %s failed", s.action.Kind)
	}
	s.stashRef = execResult.StashRef
	s.phase = phasePreBranchExecuted

	if s.action.StashUnstaged {
		// Separate keep-index stash of only the unstaged changes, to be
		// replayed into the new worktree. Tracked apart from the
		// executor's own stash.
		ref, err := s.deps.Git.Stash(git.StashParams{
			RepoPath:         s.repoRoot,
			Message:          fmt.Sprintf("prflow: unstaged changes for %s", s.branchName),
			KeepIndex:        true,
			IncludeUntracked: true,
		})
		if err != nil {
			return nil, s.fail(wrapError(CodeOperationFailed, err, "could not set aside unstaged changes"))
		}
		s.unstagedStash = ref
	}

	if err := s.createBranch(); err != nil {
		return nil, s.fail(err)
	}
	s.phase = phaseBranched
	if err := s.hook(config.HookPostBranch); err != nil {
		return nil, s.fail(err)
	}

	if err := s.commitOnBranch(); err != nil {
		return nil, s.fail(err)
	}
	s.phase = phaseCommitted

	if err := s.hook(config.HookPrePush); err != nil {
		return nil, s.fail(err)
	}
	if err := s.deps.Git.Push(git.PushParams{
		RepoPath:    s.repoRoot,
		Remote:      "origin",
		Branch:      s.branchName,
		SetUpstream: true,
	}); err != nil {
		return nil, s.fail(wrapError(CodeOperationFailed, err, "push failed"))
	}
	s.phase = phasePushed
	if err := s.hook(config.HookPostPush); err != nil {
		return nil, s.fail(err)
	}

	// Return to the branch the user started on before opening the PR.
	if s.currentBranch != "" {
		if err := s.deps.Git.CheckoutBranch(s.repoRoot, s.currentBranch); err != nil {
			return nil, s.fail(wrapError(CodeOperationFailed, err,
				"could not return to branch %s", s.currentBranch))
		}
	}

	pr, err := s.createPR(ctx, s.branchName)
	if err != nil {
		return nil, s.fail(err)
	}
	s.phase = phasePRCreated

	worktreePath, err := s.createWorktree()
	if err != nil {
		return nil, s.fail(err)
	}
	s.phase = phaseWorktreeCreated

	s.restoreUnstaged(worktreePath)
	s.phase = phaseDone

	return &Result{
		Success:      true,
		PRNumber:     pr.Number,
		PRURL:        pr.URL,
		Branch:       s.branchName,
		WorktreePath: worktreePath,
		Scenario:     string(s.scenario),
		ActionTaken:  string(s.action.Kind),
	}, nil
}

// createBranch creates the new branch from the action's start point,
// turning checkout conflicts into remediation guidance.
func (s *session) createBranch() error {
	startPoint := ""
	if s.action.BranchFrom == catalog.BranchFromOriginMain {
		startPoint = "origin/" + s.cfg.BaseBranch
	}

	err := s.deps.Git.CheckoutNewBranch(git.CheckoutNewBranchParams{
		RepoPath:   s.repoRoot,
		Branch:     s.branchName,
		StartPoint: startPoint,
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, git.ErrCheckoutConflict) {
		return &Error{
			Code:    CodeOperationFailed,
			Message: fmt.Sprintf("creating %s would overwrite local changes", s.branchName),
			Suggestion: fmt.Sprintf("commit your changes, stash them, or pick an action that "+
				"branches from HEAD instead of origin/%s", s.cfg.BaseBranch),
			cause: err,
		}
	}
	return wrapError(CodeOperationFailed, err, "could not create branch %s", s.branchName)
}

// commitOnBranch commits staged files, or creates an explicitly empty
// commit when branching from the remote base left nothing to commit. A
// PR needs at least one commit different from its base; branching from
// HEAD already carries the local commits.
func (s *session) commitOnBranch() error {
	if err := s.hook(config.HookPreCommit); err != nil {
		return err
	}

	staged, err := s.deps.Git.GetStagedFiles(s.repoRoot)
	if err != nil {
		return wrapError(CodeOperationFailed, err, "could not read staged files")
	}

	switch {
	case len(staged) > 0:
		err = s.deps.Git.Commit(git.CommitParams{
			RepoPath: s.repoRoot,
			Message:  s.params.Description,
		})
	case s.action.BranchFrom == catalog.BranchFromOriginMain:
		err = s.deps.Git.Commit(git.CommitParams{
			RepoPath:   s.repoRoot,
			Message:    s.params.Description,
			AllowEmpty: true,
		})
	}
	if err != nil {
		return wrapError(CodeOperationFailed, err, "commit failed")
	}

	return s.hook(config.HookPostCommit)
}

// createPR opens the pull request, bracketed by the pr hooks.
func (s *session) createPR(ctx context.Context, head string) (*forge.PullRequest, error) {
	if err := s.hook(config.HookPrePR); err != nil {
		return nil, err
	}

	pr, err := s.client.CreatePR(ctx, forge.CreatePRParams{
		Title: s.params.Description,
		Head:  head,
		Base:  s.cfg.BaseBranch,
	})
	if err != nil {
		return nil, wrapError(CodeForgeAPIError, err, "could not create pull request")
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

// createWorktree creates <worktrees_dir>/<repo>/<branch> and attaches
// the new branch there, bracketed by the worktree hooks.
func (s *session) createWorktree() (string, error) {
	if err := s.hook(config.HookPreWorktree); err != nil {
		return "", err
	}

	worktreePath := filepath.Join(s.cfg.WorktreesDir, s.snap.RepoName, s.branchName)
	if err := s.deps.FS.MkdirAll(filepath.Dir(worktreePath), 0755); err != nil {
		return "", wrapError(CodeOperationFailed, err, "could not prepare worktree directory")
	}

	err := s.deps.Git.AddWorktree(git.AddWorktreeParams{
		RepoPath:     s.repoRoot,
		WorktreePath: worktreePath,
		Branch:       s.branchName,
	})
	if errors.Is(err, git.ErrWorktreeExists) {
		return "", &Error{
			Code:       CodeWorktreeExists,
			Message:    fmt.Sprintf("a worktree already exists at %s", worktreePath),
			Suggestion: "remove it with: git worktree remove " + worktreePath,
			cause:      err,
		}
	}
	if err != nil {
		return "", wrapError(CodeOperationFailed, err, "could not create worktree")
	}

	s.runner.UpdateContext(map[string]interface{}{"worktreePath": worktreePath})

	if err := s.hook(config.HookPostWorktree); err != nil {
		return "", err
	}
	return worktreePath, nil
}

// restoreUnstaged replays the unstaged-changes stash into the new
// worktree. A stash that fails to apply is never dropped.
func (s *session) restoreUnstaged(worktreePath string) {
	if s.unstagedStash == "" {
		return
	}

	if err := s.deps.Git.StashApply(worktreePath, s.unstagedStash); err != nil {
		s.deps.Logger.Warnf("could not replay unstaged changes into %s: %v", worktreePath, err)
		s.deps.Logger.Warnf("your changes are kept; recover them with: git stash apply %s", s.unstagedStash)
		return
	}

	if err := s.deps.Git.StashDrop(s.repoRoot, s.unstagedStash); err != nil {
		s.deps.Logger.Warnf("could not drop replayed stash %s: %v", s.unstagedStash, err)
	}
}

// hook runs one hook point, mapping failure to the hook error code.
func (s *session) hook(name string) error {
	if err := s.runner.RunHook(name); err != nil {
		return wrapError(CodeHookFailed, err, "hook %s failed", name)
	}
	return nil
}

// fail performs the rollback sequence when the phase requires it:
// cleanup hook first, then restore the executor's stash onto the
// original branch, then surface the original error unchanged.
func (s *session) fail(err error) error {
	if !s.phase.rollbackApplies() {
		return err
	}

	s.runner.RunCleanup(err)

	if s.stashRef != "" {
		if s.phase >= phaseBranched && s.currentBranch != "" {
			if coErr := s.deps.Git.CheckoutBranch(s.repoRoot, s.currentBranch); coErr != nil {
				s.deps.Logger.Warnf("could not return to %s before restoring stash: %v",
					s.currentBranch, coErr)
			}
		}
		if popErr := s.deps.Git.StashPop(s.repoRoot, s.stashRef); popErr != nil {
			s.deps.Logger.Warnf("could not restore stash %s: %v", s.stashRef, popErr)
			s.deps.Logger.Warnf("recover your changes with: git stash pop %s", s.stashRef)
		}
	}

	return err
}
