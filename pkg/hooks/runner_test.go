//go:build unit

package hooks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"prflow/pkg/config"
	"prflow/pkg/hooks"
	"prflow/pkg/hooks/mocks"
	"prflow/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func defaults() config.HookDefaults {
	return config.HookDefaults{
		Timeout:    config.Duration(5 * time.Second),
		MaxTimeout: config.Duration(30 * time.Second),
	}
}

func TestRunHook_FastPathNeverSpawns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)
	// No expectations: any spawn fails the test.

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPreCommit: {{Command: "make lint"}},
		},
		Defaults: defaults(),
		Spawner:  spawner,
	})

	assert.NoError(t, runner.RunHook(config.HookPreBranch))
}

func TestRunHook_UnknownName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Defaults: defaults(),
		Spawner:  spawner,
	})

	err := runner.RunHook("pre-deploy")
	assert.ErrorIs(t, err, hooks.ErrUnknownHook)
}

func TestRunHook_SequentialCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPrePush: {
				{Command: "make test"},
				{Command: "make lint"},
			},
		},
		Defaults: defaults(),
		Dir:      "/repo",
		Spawner:  spawner,
	})

	gomock.InOrder(
		spawner.EXPECT().
			Run(gomock.Any(), "make test", "/repo", gomock.Any()).
			Return("ok", nil),
		spawner.EXPECT().
			Run(gomock.Any(), "make lint", "/repo", gomock.Any()).
			Return("ok", nil),
	)

	assert.NoError(t, runner.RunHook(config.HookPrePush))
}

func TestRunHook_CommandFailureAbortsRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPreCommit: {
				{Command: "make test"},
				{Command: "make lint"},
			},
		},
		Defaults: defaults(),
		Spawner:  spawner,
	})

	spawner.EXPECT().
		Run(gomock.Any(), "make test", gomock.Any(), gomock.Any()).
		Return("boom", errors.New("exit status 1"))
	// "make lint" must not run.

	err := runner.RunHook(config.HookPreCommit)
	assert.ErrorIs(t, err, hooks.ErrHookFailed)
	assert.Contains(t, err.Error(), "make test")
}

func TestRunHook_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPreBranch: {
				{Command: "sleep 5", Timeout: config.Duration(50 * time.Millisecond)},
			},
		},
		Defaults: defaults(),
		Spawner:  spawner,
	})

	spawner.EXPECT().
		Run(gomock.Any(), "sleep 5", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ []string) (string, error) {
			// Block until the runner's deadline fires, like a real
			// subprocess killed by context cancellation.
			<-ctx.Done()
			return "", ctx.Err()
		})

	err := runner.RunHook(config.HookPreBranch)
	assert.ErrorIs(t, err, hooks.ErrHookTimeout)
}

func TestRunHook_TimeoutClampedToMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPrePR: {
				{Command: "make e2e", Timeout: config.Duration(10 * time.Minute)},
			},
		},
		Defaults: config.HookDefaults{
			Timeout:    config.Duration(5 * time.Second),
			MaxTimeout: config.Duration(20 * time.Second),
		},
		Spawner: spawner,
	})

	spawner.EXPECT().
		Run(gomock.Any(), "make e2e", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ []string) (string, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.LessOrEqual(t, time.Until(deadline), 20*time.Second)
			return "", nil
		})

	assert.NoError(t, runner.RunHook(config.HookPrePR))
}

func TestUpdateContext_LastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPostBranch: {{Command: "notify"}},
		},
		Defaults: defaults(),
		Spawner:  spawner,
	})

	runner.UpdateContext(map[string]interface{}{
		"branchName": "feature-old",
		"baseBranch": "main",
	})
	runner.UpdateContext(map[string]interface{}{
		"branchName": "feature-new",
		"prNumber":   42,
	})

	var captured []string
	spawner.EXPECT().
		Run(gomock.Any(), "notify", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, env []string) (string, error) {
			captured = env
			return "", nil
		})

	require.NoError(t, runner.RunHook(config.HookPostBranch))
	assert.Contains(t, captured, "PRFLOW_HOOK=post-branch")
	assert.Contains(t, captured, "PRFLOW_BRANCH_NAME=feature-new")
	assert.Contains(t, captured, "PRFLOW_BASE_BRANCH=main")
	assert.Contains(t, captured, "PRFLOW_PR_NUMBER=42")
	assert.NotContains(t, captured, "PRFLOW_BRANCH_NAME=feature-old")
}

func TestRunCleanup_RecordsErrorAndSwallowsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)
	log := logger.NewMockLogger(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookCleanup: {{Command: "cleanup.sh"}},
		},
		Defaults: defaults(),
		Logger:   log,
		Spawner:  spawner,
	})

	var captured []string
	spawner.EXPECT().
		Run(gomock.Any(), "cleanup.sh", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, env []string) (string, error) {
			captured = env
			return "", errors.New("exit status 1")
		})
	log.EXPECT().Warnf(gomock.Any(), gomock.Any())

	runner.RunCleanup(errors.New("push rejected"))
	assert.Contains(t, captured, "PRFLOW_ERROR=push rejected")
}

func TestDisabledRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)
	// No expectations: a disabled runner must never spawn.

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPreBranch: {{Command: "make lint"}},
			config.HookCleanup:   {{Command: "cleanup.sh"}},
		},
		Defaults: defaults(),
		Spawner:  spawner,
		Disabled: true,
	})

	assert.NoError(t, runner.RunHook(config.HookPreBranch))
	runner.RunCleanup(errors.New("boom"))
	assert.False(t, runner.HasConfiguredHooks())
	assert.Empty(t, runner.ConfiguredHooks())
}

func TestConfiguredHooks_WorkflowOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	spawner := mocks.NewMockCommandRunner(ctrl)

	runner := hooks.NewRunner(hooks.NewRunnerParams{
		Hooks: map[string]config.HookCommands{
			config.HookPostPush:  {{Command: "notify"}},
			config.HookPreBranch: {{Command: "make lint"}},
			config.HookCleanup:   {{Command: "cleanup.sh"}},
		},
		Defaults: defaults(),
		Spawner:  spawner,
	})

	assert.True(t, runner.HasConfiguredHooks())
	assert.Equal(t,
		[]string{config.HookPreBranch, config.HookPostPush, config.HookCleanup},
		runner.ConfiguredHooks())
}
