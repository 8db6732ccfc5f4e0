//go:build unit

package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"prflow/pkg/config"
	configmocks "prflow/pkg/config/mocks"
	"prflow/pkg/dependencies"
	"prflow/pkg/forge"
	forgemocks "prflow/pkg/forge/mocks"
	fsmocks "prflow/pkg/fs/mocks"
	"prflow/pkg/git"
	gitmocks "prflow/pkg/git/mocks"
	"prflow/pkg/hooks"
	hookmocks "prflow/pkg/hooks/mocks"
	"prflow/pkg/prompt"
	promptmocks "prflow/pkg/prompt/mocks"
	"prflow/pkg/workflow"
)

type fixture struct {
	git     *gitmocks.MockGit
	fs      *fsmocks.MockFS
	cfg     *configmocks.MockManager
	prompt  *promptmocks.MockPrompter
	manager *forgemocks.MockManagerInterface
	client  *forgemocks.MockClient
	runner  *hookmocks.MockRunner
	wf      workflow.Workflow
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		git:     gitmocks.NewMockGit(ctrl),
		fs:      fsmocks.NewMockFS(ctrl),
		cfg:     configmocks.NewMockManager(ctrl),
		prompt:  promptmocks.NewMockPrompter(ctrl),
		manager: forgemocks.NewMockManagerInterface(ctrl),
		client:  forgemocks.NewMockClient(ctrl),
		runner:  hookmocks.NewMockRunner(ctrl),
	}

	deps := dependencies.New().
		WithGit(f.git).
		WithFS(f.fs).
		WithConfig(f.cfg).
		WithPrompt(f.prompt).
		WithForge(f.manager).
		WithHookRunnerProvider(func(hooks.NewRunnerParams) hooks.Runner { return f.runner })
	f.wf = workflow.NewWorkflow(deps)

	return f
}

// expectSetup covers the invariant preamble: config, repository root,
// forge selection and auth, and the fetch.
func (f *fixture) expectSetup() {
	f.cfg.EXPECT().GetConfigWithFallback().Return(config.Config{
		BaseBranch:   "main",
		WorktreesDir: "/wt",
	}, nil)
	f.git.EXPECT().GetRepositoryRoot(gomock.Any()).Return("/repo", nil).AnyTimes()
	f.git.EXPECT().GetRemoteURL("/repo", "origin").Return("https://github.com/acme/widgets.git", nil)
	f.manager.EXPECT().ClientFor("https://github.com/acme/widgets.git").Return(f.client, nil)
	f.client.EXPECT().CheckAuth(gomock.Any()).Return(nil)
	f.client.EXPECT().Name().Return("github").AnyTimes()
	f.runner.EXPECT().UpdateContext(gomock.Any()).AnyTimes()
	f.git.EXPECT().FetchRemote("/repo", "origin").Return(nil)
}

func (f *fixture) expectHooksPass() {
	f.runner.EXPECT().RunHook(gomock.Any()).Return(nil).AnyTimes()
}

type snapshot struct {
	branch   string
	detached bool
	linked   bool
	ahead    int
	staged   []string
	unstaged []string
}

// expectSnapshot covers the read-only state queries. Some are also
// issued again later in the flow, hence AnyTimes.
func (f *fixture) expectSnapshot(s snapshot) {
	f.git.EXPECT().GetRepositoryName("/repo").Return("widgets", nil).AnyTimes()
	f.git.EXPECT().IsLinkedWorktree("/repo").Return(s.linked, nil).AnyTimes()

	if s.detached {
		f.git.EXPECT().GetCurrentBranch("/repo").Return("", git.ErrDetachedHead).AnyTimes()
	} else {
		f.git.EXPECT().GetCurrentBranch("/repo").Return(s.branch, nil).AnyTimes()
	}

	f.git.EXPECT().GetAheadBehind("/repo", "origin/main").
		Return(git.AheadBehind{Ahead: s.ahead}, nil).AnyTimes()

	commits := make([]git.CommitSummary, s.ahead)
	for i := range commits {
		commits[i] = git.CommitSummary{Hash: "abc1234", Subject: "wip"}
	}
	f.git.EXPECT().GetCommitsAhead("/repo", "origin/main").Return(commits, nil).AnyTimes()

	f.git.EXPECT().GetStagedFiles("/repo").Return(s.staged, nil).AnyTimes()
	f.git.EXPECT().GetUnstagedFiles("/repo").Return(s.unstaged, nil).AnyTimes()
}

func requireCode(t *testing.T, err error, code workflow.Code) *workflow.Error {
	t.Helper()
	var wErr *workflow.Error
	require.ErrorAs(t, err, &wErr)
	require.Equal(t, code, wErr.Code)
	return wErr
}

func TestRun_EmptyDescription(t *testing.T) {
	f := newFixture(t)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{Description: "  "})

	requireCode(t, err, workflow.CodeInvalidArgument)
}

func TestRun_MainCleanSame_NonInteractive(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main"})

	f.git.EXPECT().CheckoutNewBranch(git.CheckoutNewBranchParams{
		RepoPath:   "/repo",
		Branch:     "fix-login-retry-bug",
		StartPoint: "origin/main",
	}).Return(nil)
	f.git.EXPECT().Commit(git.CommitParams{
		RepoPath:   "/repo",
		Message:    "Fix login retry bug",
		AllowEmpty: true,
	}).Return(nil)
	f.git.EXPECT().Push(git.PushParams{
		RepoPath:    "/repo",
		Remote:      "origin",
		Branch:      "fix-login-retry-bug",
		SetUpstream: true,
	}).Return(nil)
	f.git.EXPECT().CheckoutBranch("/repo", "main").Return(nil)
	f.client.EXPECT().CreatePR(gomock.Any(), forge.CreatePRParams{
		Title: "Fix login retry bug",
		Head:  "fix-login-retry-bug",
		Base:  "main",
	}).Return(&forge.PullRequest{Number: 7, URL: "https://github.com/acme/widgets/pull/7"}, nil)
	f.fs.EXPECT().MkdirAll("/wt/widgets", gomock.Any()).Return(nil)
	f.git.EXPECT().AddWorktree(git.AddWorktreeParams{
		RepoPath:     "/repo",
		WorktreePath: "/wt/widgets/fix-login-retry-bug",
		Branch:       "fix-login-retry-bug",
	}).Return(nil)

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 7, result.PRNumber)
	assert.Equal(t, "fix-login-retry-bug", result.Branch)
	assert.Equal(t, "/wt/widgets/fix-login-retry-bug", result.WorktreePath)
	assert.Equal(t, "main_clean_same", result.Scenario)
	assert.Equal(t, "empty_commit", result.ActionTaken)
}

func TestRun_ExplicitBranchNameOverridesDerivation(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main"})

	f.git.EXPECT().CheckoutNewBranch(git.CheckoutNewBranchParams{
		RepoPath:   "/repo",
		Branch:     "hotfix/login",
		StartPoint: "origin/main",
	}).Return(nil)
	f.git.EXPECT().Commit(gomock.Any()).Return(nil)
	f.git.EXPECT().Push(gomock.Any()).Return(nil)
	f.git.EXPECT().CheckoutBranch("/repo", "main").Return(nil)
	f.client.EXPECT().CreatePR(gomock.Any(), gomock.Any()).
		Return(&forge.PullRequest{Number: 8}, nil)
	f.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	f.git.EXPECT().AddWorktree(gomock.Any()).Return(nil)

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Branch:         "hotfix/login",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "hotfix/login", result.Branch)
}

func TestRun_RollbackRestoresStashAndRunsCleanupOnce(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main", unstaged: []string{"a.go"}})

	branchErr := errors.New("fatal: cannot create branch")
	f.git.EXPECT().Stash(gomock.Any()).Return("stash@{0}", nil)
	f.git.EXPECT().CheckoutNewBranch(gomock.Any()).Return(branchErr)
	f.runner.EXPECT().RunCleanup(gomock.Any()).Times(1)
	f.git.EXPECT().StashPop("/repo", "stash@{0}").Return(nil).Times(1)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Action:         "stash_and_empty",
		NonInteractive: true,
	})

	wErr := requireCode(t, err, workflow.CodeOperationFailed)
	assert.ErrorIs(t, wErr, branchErr)
}

func TestRun_NonInteractiveUnknownAction(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main"})

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Action:         "commit_staged",
		NonInteractive: true,
	})

	wErr := requireCode(t, err, workflow.CodeInvalidAction)
	assert.Contains(t, wErr.Message, "empty_commit")
}

func TestRun_PRWorktreeRejectedNonInteractive(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "feature-x", linked: true, ahead: 1})

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		NonInteractive: true,
	})

	wErr := requireCode(t, err, workflow.CodeInvalidAction)
	assert.Contains(t, wErr.Message, "worktree")
}

func TestRun_UserCancelled(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main"})

	f.prompt.EXPECT().SelectAction(gomock.Any()).Return(nil, prompt.ErrCancelled)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:    "/repo",
		Description: "Fix login retry bug",
	})

	requireCode(t, err, workflow.CodeUserCancelled)
}

func TestRun_CheckoutConflictSuggestsRemediation(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main", unstaged: []string{"a.go"}})

	f.git.EXPECT().Stage("/repo", ".").Return(nil)
	f.git.EXPECT().CheckoutNewBranch(gomock.Any()).Return(git.ErrCheckoutConflict)
	f.runner.EXPECT().RunCleanup(gomock.Any()).Times(1)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Action:         "commit_all",
		NonInteractive: true,
	})

	wErr := requireCode(t, err, workflow.CodeOperationFailed)
	assert.NotEmpty(t, wErr.Suggestion)
	assert.ErrorIs(t, wErr, git.ErrCheckoutConflict)
}

func TestRun_HookFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectSnapshot(snapshot{branch: "main"})

	hookErr := errors.New("make test: exit status 1")
	f.runner.EXPECT().RunHook(gomock.Any()).DoAndReturn(func(name string) error {
		if name == config.HookPrePush {
			return hookErr
		}
		return nil
	}).AnyTimes()

	f.git.EXPECT().CheckoutNewBranch(gomock.Any()).Return(nil)
	f.git.EXPECT().Commit(gomock.Any()).Return(nil)
	f.runner.EXPECT().RunCleanup(gomock.Any()).Times(1)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		NonInteractive: true,
	})

	wErr := requireCode(t, err, workflow.CodeHookFailed)
	assert.ErrorIs(t, wErr, hookErr)
}

func TestRun_UnstagedStashReplayedIntoWorktree(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main", staged: []string{"a.go"}, unstaged: []string{"b.go"}})

	f.git.EXPECT().Stash(gomock.Any()).DoAndReturn(func(params git.StashParams) (string, error) {
		assert.True(t, params.KeepIndex)
		assert.True(t, params.IncludeUntracked)
		return "stash@{1}", nil
	})
	f.git.EXPECT().CheckoutNewBranch(gomock.Any()).Return(nil)
	f.git.EXPECT().Commit(git.CommitParams{
		RepoPath: "/repo",
		Message:  "Fix login retry bug",
	}).Return(nil)
	f.git.EXPECT().Push(gomock.Any()).Return(nil)
	f.git.EXPECT().CheckoutBranch("/repo", "main").Return(nil)
	f.client.EXPECT().CreatePR(gomock.Any(), gomock.Any()).
		Return(&forge.PullRequest{Number: 9}, nil)
	f.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	f.git.EXPECT().AddWorktree(gomock.Any()).Return(nil)
	f.git.EXPECT().StashApply("/wt/widgets/fix-login-retry-bug", "stash@{1}").Return(nil)
	f.git.EXPECT().StashDrop("/repo", "stash@{1}").Return(nil)

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Action:         "commit_staged",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestRun_UnstagedStashKeptWhenReplayFails(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main", staged: []string{"a.go"}, unstaged: []string{"b.go"}})

	f.git.EXPECT().Stash(gomock.Any()).Return("stash@{1}", nil)
	f.git.EXPECT().CheckoutNewBranch(gomock.Any()).Return(nil)
	f.git.EXPECT().Commit(gomock.Any()).Return(nil)
	f.git.EXPECT().Push(gomock.Any()).Return(nil)
	f.git.EXPECT().CheckoutBranch("/repo", "main").Return(nil)
	f.client.EXPECT().CreatePR(gomock.Any(), gomock.Any()).
		Return(&forge.PullRequest{Number: 9}, nil)
	f.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	f.git.EXPECT().AddWorktree(gomock.Any()).Return(nil)
	f.git.EXPECT().StashApply(gomock.Any(), "stash@{1}").Return(errors.New("conflict"))
	// No StashDrop: the stash must survive a failed replay.

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Action:         "commit_staged",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestRun_ExistingBranchReusesOpenPR(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "feature-x", ahead: 2})

	f.git.EXPECT().BranchExistsOnRemote(git.BranchExistsOnRemoteParams{
		RepoPath:   "/repo",
		RemoteName: "origin",
		Branch:     "feature-x",
	}).Return(true, nil)
	f.git.EXPECT().Push(git.PushParams{
		RepoPath: "/repo",
		Remote:   "origin",
		Branch:   "feature-x",
	}).Return(nil)
	f.client.EXPECT().GetOpenPRForBranch(gomock.Any(), "feature-x").
		Return(&forge.PullRequest{Number: 12, URL: "https://github.com/acme/widgets/pull/12"}, nil)

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "feature-x", result.Branch)
	assert.Equal(t, 12, result.PRNumber)
	assert.Empty(t, result.WorktreePath)
	assert.Equal(t, "branch_divergent", result.Scenario)
	assert.Equal(t, "create_pr_for_branch", result.ActionTaken)
}

func TestRun_ExistingBranchStashRestoredAfterPR(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "feature-x", ahead: 2, unstaged: []string{"b.go"}})

	f.git.EXPECT().Stash(gomock.Any()).Return("stash@{0}", nil)
	f.git.EXPECT().BranchExistsOnRemote(gomock.Any()).Return(false, nil)
	f.git.EXPECT().Push(git.PushParams{
		RepoPath:    "/repo",
		Remote:      "origin",
		Branch:      "feature-x",
		SetUpstream: true,
	}).Return(nil)
	f.client.EXPECT().GetOpenPRForBranch(gomock.Any(), "feature-x").
		Return(nil, forge.ErrPRNotFound)
	f.client.EXPECT().CreatePR(gomock.Any(), forge.CreatePRParams{
		Title: "Fix login retry bug",
		Head:  "feature-x",
		Base:  "main",
	}).Return(&forge.PullRequest{Number: 13}, nil)
	f.git.EXPECT().StashPop("/repo", "stash@{0}").Return(nil).Times(1)

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		Action:         "pr_for_branch_stash",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 13, result.PRNumber)
}

func TestRun_DetachedHeadNeedsExplicitAction(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{detached: true})

	f.git.EXPECT().CheckoutNewBranch(git.CheckoutNewBranchParams{
		RepoPath: "/repo",
		Branch:   "fix-login-retry-bug",
	}).Return(nil)
	f.git.EXPECT().Push(gomock.Any()).Return(nil)
	f.client.EXPECT().CreatePR(gomock.Any(), gomock.Any()).
		Return(&forge.PullRequest{Number: 14}, nil)
	f.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	f.git.EXPECT().AddWorktree(gomock.Any()).Return(nil)

	result, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		NonInteractive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "detached_head", result.Scenario)
	assert.Equal(t, "branch_from_detached", result.ActionTaken)
}

func TestRun_AuthPreconditionMapsTokenErrors(t *testing.T) {
	tests := []struct {
		name     string
		authErr  error
		wantCode workflow.Code
	}{
		{name: "missing token", authErr: forge.ErrTokenMissing, wantCode: workflow.CodeTokenMissing},
		{name: "rejected token", authErr: forge.ErrNotAuthenticated, wantCode: workflow.CodeNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cfg.EXPECT().GetConfigWithFallback().Return(config.Config{BaseBranch: "main"}, nil)
			f.git.EXPECT().GetRepositoryRoot(gomock.Any()).Return("/repo", nil)
			f.git.EXPECT().GetRemoteURL("/repo", "origin").
				Return("https://github.com/acme/widgets.git", nil)
			f.manager.EXPECT().ClientFor(gomock.Any()).Return(f.client, nil)
			f.client.EXPECT().CheckAuth(gomock.Any()).Return(tt.authErr)
			f.client.EXPECT().Name().Return("github").AnyTimes()

			_, err := f.wf.Run(context.Background(), workflow.RunParams{
				RepoPath:    "/repo",
				Description: "Fix login retry bug",
			})

			wErr := requireCode(t, err, tt.wantCode)
			assert.NotEmpty(t, wErr.Suggestion)
		})
	}
}

func TestRun_NotARepository(t *testing.T) {
	f := newFixture(t)
	f.cfg.EXPECT().GetConfigWithFallback().Return(config.Config{BaseBranch: "main"}, nil)
	f.git.EXPECT().GetRepositoryRoot("/tmp/elsewhere").Return("", git.ErrNotARepository)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:    "/tmp/elsewhere",
		Description: "Fix login retry bug",
	})

	requireCode(t, err, workflow.CodeOperationFailed)
}

func TestRun_WorktreeExists(t *testing.T) {
	f := newFixture(t)
	f.expectSetup()
	f.expectHooksPass()
	f.expectSnapshot(snapshot{branch: "main"})

	f.git.EXPECT().CheckoutNewBranch(gomock.Any()).Return(nil)
	f.git.EXPECT().Commit(gomock.Any()).Return(nil)
	f.git.EXPECT().Push(gomock.Any()).Return(nil)
	f.git.EXPECT().CheckoutBranch("/repo", "main").Return(nil)
	f.client.EXPECT().CreatePR(gomock.Any(), gomock.Any()).
		Return(&forge.PullRequest{Number: 15}, nil)
	f.fs.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	f.git.EXPECT().AddWorktree(gomock.Any()).Return(git.ErrWorktreeExists)
	f.runner.EXPECT().RunCleanup(gomock.Any()).Times(1)

	_, err := f.wf.Run(context.Background(), workflow.RunParams{
		RepoPath:       "/repo",
		Description:    "Fix login retry bug",
		NonInteractive: true,
	})

	wErr := requireCode(t, err, workflow.CodeWorktreeExists)
	assert.NotEmpty(t, wErr.Suggestion)
}
