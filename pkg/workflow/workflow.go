// Package workflow orchestrates the branch-and-PR sequence: classify
// the repository, pick a remediation action, run it, branch, commit,
// push, open the PR and create its worktree, with rollback on failure.
package workflow

import (
	"context"

	"prflow/pkg/dependencies"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=workflow.go -destination=mocks/workflow.gen.go -package=mocks

// RunParams contains parameters for one workflow invocation.
type RunParams struct {
	// RepoPath is any path inside the repository to operate on.
	RepoPath string
	// Description is the change description; it becomes the commit
	// message and the PR title.
	Description string
	// Branch overrides the branch name derived from the description.
	Branch string
	// BaseBranch overrides the configured base branch.
	BaseBranch string
	// Action names a catalog action kind, bypassing the default.
	Action string
	// NonInteractive suppresses all prompting.
	NonInteractive bool
	// NoHooks disables configured hooks for this invocation.
	NoHooks bool
}

// Result is the success payload of a workflow run.
type Result struct {
	Success      bool   `json:"success"`
	PRNumber     int    `json:"prNumber,omitempty"`
	PRURL        string `json:"prUrl,omitempty"`
	Branch       string `json:"branch,omitempty"`
	WorktreePath string `json:"worktreePath,omitempty"`
	Scenario     string `json:"scenario,omitempty"`
	ActionTaken  string `json:"actionTaken,omitempty"`
}

// Workflow is the orchestrator's single entry point.
type Workflow interface {
	// Run executes the full sequence and returns a structured result.
	// Failures are *Error values carrying a stable code.
	Run(ctx context.Context, params RunParams) (*Result, error)
}

type realWorkflow struct {
	deps *dependencies.Dependencies
}

// NewWorkflow creates a workflow backed by the dependency container.
func NewWorkflow(deps *dependencies.Dependencies) Workflow {
	return &realWorkflow{deps: deps}
}
