package catalog

import (
	"fmt"

	"prflow/pkg/state"
)

// Level classifies how a scenario message should be rendered.
type Level string

// Message levels.
const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Choice pairs a human-readable label with an action. A nil Action means
// cancel.
type Choice struct {
	Label  string
	Action *StateAction
}

// Choices is the catalog entry for one scenario: a message and an
// ordered list of candidate actions, least destructive first, ending
// with a cancel choice.
type Choices struct {
	Message    string
	Level      Level
	SubMessage string
	Choices    []Choice
}

// DefaultAction returns the first non-nil action, the non-interactive
// default. Returns nil when only cancel is available.
func (c Choices) DefaultAction() *StateAction {
	for _, choice := range c.Choices {
		if choice.Action != nil {
			return choice.Action
		}
	}
	return nil
}

// FindAction returns the action with the given kind, or nil when the
// kind is not offered for this scenario.
func (c Choices) FindAction(kind ActionKind) *StateAction {
	for _, choice := range c.Choices {
		if choice.Action != nil && choice.Action.Kind == kind {
			return choice.Action
		}
	}
	return nil
}

// AvailableKinds lists the offered action kinds in catalog order.
func (c Choices) AvailableKinds() []ActionKind {
	var kinds []ActionKind
	for _, choice := range c.Choices {
		if choice.Action != nil {
			kinds = append(kinds, choice.Action.Kind)
		}
	}
	return kinds
}

const cancelLabel = "Cancel"

func cancel() Choice {
	return Choice{Label: cancelLabel}
}

// ChoicesFor returns the catalog entry for a scenario. The switch is
// exhaustive over the twelve scenarios so an unhandled scenario is a
// compile-time omission, not a silent default.
func ChoicesFor(scenario state.Scenario, s *state.GitState, baseBranch string) Choices {
	switch scenario {
	case state.ScenarioMainCleanSame:
		return mainCleanSame(baseBranch)
	case state.ScenarioMainStagedSame:
		return mainStagedSame(s, baseBranch)
	case state.ScenarioMainUnstagedSame:
		return mainUnstagedSame(s, baseBranch)
	case state.ScenarioMainBothSame:
		return mainBothSame(s, baseBranch)
	case state.ScenarioMainCleanAhead:
		return mainCleanAhead(s, baseBranch)
	case state.ScenarioMainChangesAhead:
		return mainChangesAhead(s, baseBranch)
	case state.ScenarioBranchSameAsMain:
		return branchSameAsMain(s, baseBranch)
	case state.ScenarioBranchAncestor:
		return branchAncestor(s, baseBranch)
	case state.ScenarioBranchDivergent:
		return branchDivergent(s, baseBranch)
	case state.ScenarioBranchChanges:
		return branchWithChanges(s, baseBranch)
	case state.ScenarioDetachedHead:
		return detachedHead()
	case state.ScenarioPRWorktree:
		return prWorktree()
	}

	// FALLBACK: mirrors the classifier fallback; only reachable for a
	// Scenario value outside the closed enumeration.
	return mainCleanSame(baseBranch)
}

func mainCleanSame(baseBranch string) Choices {
	return Choices{
		Message: fmt.Sprintf("On %s with a clean working tree.", baseBranch),
		Level:   LevelInfo,
		Choices: []Choice{
			{
				Label:  "Create a branch with an empty commit",
				Action: &StateAction{Kind: ActionEmptyCommit, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func mainStagedSame(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("On %s with staged changes.", baseBranch),
		Level:      LevelInfo,
		SubMessage: fileSummary("Staged", s.StagedFiles),
		Choices: []Choice{
			{
				Label:  "Take the staged changes to a new branch and commit them there",
				Action: &StateAction{Kind: ActionCommitStaged, BranchFrom: BranchFromOriginMain},
			},
			{
				Label:  "Stash the staged changes and branch with an empty commit",
				Action: &StateAction{Kind: ActionStashAndEmpty, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func mainUnstagedSame(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("On %s with unstaged changes.", baseBranch),
		Level:      LevelInfo,
		SubMessage: fileSummary("Unstaged", s.UnstagedFiles),
		Choices: []Choice{
			{
				Label:  "Stage everything and commit it on a new branch",
				Action: &StateAction{Kind: ActionCommitAll, BranchFrom: BranchFromOriginMain},
			},
			{
				Label:  "Stash the changes and branch with an empty commit",
				Action: &StateAction{Kind: ActionStashAndEmpty, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func mainBothSame(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("On %s with both staged and unstaged changes.", baseBranch),
		Level:      LevelWarning,
		SubMessage: fileSummary("Staged", s.StagedFiles) + "; " + fileSummary("unstaged", s.UnstagedFiles),
		Choices: []Choice{
			{
				Label:  "Take the staged changes to a new branch, move unstaged into its worktree",
				Action: &StateAction{Kind: ActionCommitStaged, BranchFrom: BranchFromOriginMain, StashUnstaged: true},
			},
			{
				Label:  "Stage everything and commit it on a new branch",
				Action: &StateAction{Kind: ActionCommitAll, BranchFrom: BranchFromOriginMain},
			},
			{
				Label:  "Stash all changes and branch with an empty commit",
				Action: &StateAction{Kind: ActionStashAndEmpty, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func mainCleanAhead(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("On %s with %d local commit(s) not on origin/%s.", baseBranch, len(s.LocalCommits), baseBranch),
		Level:      LevelWarning,
		SubMessage: commitSummary(s.LocalCommits),
		Choices: []Choice{
			{
				Label:  "Move the local commits to a new branch",
				Action: &StateAction{Kind: ActionUseCommits, BranchFrom: BranchFromHead},
			},
			{
				Label:  fmt.Sprintf("Push the commits to origin/%s first, then branch fresh", baseBranch),
				Action: &StateAction{Kind: ActionPushThenBranch, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func mainChangesAhead(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("On %s with local commits and uncommitted changes.", baseBranch),
		Level:      LevelWarning,
		SubMessage: commitSummary(s.LocalCommits),
		Choices: []Choice{
			{
				Label:  "Take the commits to a new branch and commit all changes there",
				Action: &StateAction{Kind: ActionUseCommitsCommitAll, BranchFrom: BranchFromHead},
			},
			{
				Label:  "Take the commits to a new branch, stash the changes",
				Action: &StateAction{Kind: ActionUseCommitsStash, BranchFrom: BranchFromHead},
			},
			cancel(),
		},
	}
}

func branchSameAsMain(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message: fmt.Sprintf("On branch %s, which has no commits beyond origin/%s.", s.CurrentBranch, baseBranch),
		Level:   LevelInfo,
		Choices: []Choice{
			{
				Label:  "Create a fresh branch with an empty commit",
				Action: &StateAction{Kind: ActionEmptyCommit, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func branchAncestor(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message: fmt.Sprintf("Branch %s is behind origin/%s with no commits of its own.", s.CurrentBranch, baseBranch),
		Level:   LevelInfo,
		Choices: []Choice{
			{
				Label:  fmt.Sprintf("Create a fresh branch from origin/%s with an empty commit", baseBranch),
				Action: &StateAction{Kind: ActionEmptyCommit, BranchFrom: BranchFromOriginMain},
			},
			cancel(),
		},
	}
}

func branchDivergent(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("Branch %s has its own commits.", s.CurrentBranch),
		Level:      LevelInfo,
		SubMessage: commitSummary(s.LocalCommits),
		Choices: []Choice{
			{
				Label:  fmt.Sprintf("Create a PR for %s as it is", s.CurrentBranch),
				Action: &StateAction{Kind: ActionCreatePRForBranch, BranchFrom: BranchFromHead},
			},
			{
				Label:  "Start a new branch from here, keeping the commits",
				Action: &StateAction{Kind: ActionUseCommits, BranchFrom: BranchFromHead},
			},
			cancel(),
		},
	}
}

func branchWithChanges(s *state.GitState, baseBranch string) Choices {
	return Choices{
		Message:    fmt.Sprintf("Branch %s has commits and uncommitted changes.", s.CurrentBranch),
		Level:      LevelWarning,
		SubMessage: commitSummary(s.LocalCommits),
		Choices: []Choice{
			{
				Label:  "Commit everything on this branch and create a PR for it",
				Action: &StateAction{Kind: ActionPRForBranchCommitAll, BranchFrom: BranchFromHead},
			},
			{
				Label:  "Stash the changes and create a PR for the existing commits",
				Action: &StateAction{Kind: ActionPRForBranchStash, BranchFrom: BranchFromHead},
			},
			{
				Label:  "Start a new branch from here and commit everything there",
				Action: &StateAction{Kind: ActionUseCommitsCommitAll, BranchFrom: BranchFromHead},
			},
			cancel(),
		},
	}
}

func detachedHead() Choices {
	return Choices{
		Message: "HEAD is detached (not on any branch).",
		Level:   LevelWarning,
		Choices: []Choice{
			{
				Label:  "Create a branch here to keep the current state",
				Action: &StateAction{Kind: ActionBranchFromDetached, BranchFrom: BranchFromHead},
			},
			cancel(),
		},
	}
}

func prWorktree() Choices {
	return Choices{
		Message:    "This is a PR worktree, not the main checkout.",
		Level:      LevelWarning,
		SubMessage: "Starting a workflow from a PR worktree is usually a mistake.",
		Choices: []Choice{
			{
				Label:  "Continue anyway (re-check repository state)",
				Action: &StateAction{Kind: ActionContinueAnyway, BranchFrom: BranchFromHead},
			},
			cancel(),
		},
	}
}

func fileSummary(kind string, files []string) string {
	if len(files) == 0 {
		return ""
	}
	if len(files) == 1 {
		return fmt.Sprintf("%s: %s", kind, files[0])
	}
	return fmt.Sprintf("%s: %s and %d more", kind, files[0], len(files)-1)
}

func commitSummary(commits []state.CommitSummary) string {
	if len(commits) == 0 {
		return ""
	}
	if len(commits) == 1 {
		return fmt.Sprintf("Local commit: %s", commits[0].Subject)
	}
	return fmt.Sprintf("Local commits: %s and %d more", commits[0].Subject, len(commits)-1)
}
