//go:build unit

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allWorktreeKinds() []WorktreeKind {
	return []WorktreeKind{WorktreeMain, WorktreePR}
}

func allBranchKinds() []BranchKind {
	return []BranchKind{BranchMain, BranchFeature, BranchDetached}
}

func allRelationships() []CommitRelationship {
	return []CommitRelationship{RelationshipSame, RelationshipAhead, RelationshipDiverged, RelationshipAncestor}
}

func allTreeStatuses() []TreeStatus {
	return []TreeStatus{TreeClean, TreeHasStaged, TreeHasUnstaged, TreeHasBoth}
}

func stateFor(wt WorktreeKind, bk BranchKind, rel CommitRelationship, ts TreeStatus) *GitState {
	s := &GitState{
		WorktreeKind:       wt,
		BranchKind:         bk,
		CommitRelationship: rel,
		WorkingTreeStatus:  ts,
		RepoRoot:           "/repo",
		RepoName:           "repo",
	}
	if bk != BranchDetached {
		s.CurrentBranch = "some-branch"
	}
	switch ts {
	case TreeHasStaged:
		s.StagedFiles = []string{"a.go"}
	case TreeHasUnstaged:
		s.UnstagedFiles = []string{"b.go"}
	case TreeHasBoth:
		s.StagedFiles = []string{"a.go"}
		s.UnstagedFiles = []string{"b.go"}
	}
	return s
}

// Classify must return exactly one of the twelve scenarios for every
// syntactically valid field combination.
func TestClassify_Totality(t *testing.T) {
	valid := make(map[Scenario]bool)
	for _, s := range AllScenarios() {
		valid[s] = true
	}

	for _, wt := range allWorktreeKinds() {
		for _, bk := range allBranchKinds() {
			for _, rel := range allRelationships() {
				for _, ts := range allTreeStatuses() {
					scenario := Classify(stateFor(wt, bk, rel, ts))
					assert.True(t, valid[scenario],
						"unexpected scenario %q for (%s, %s, %s, %s)", scenario, wt, bk, rel, ts)
				}
			}
		}
	}
}

// The PR-worktree flag overrides every other field.
func TestClassify_PRWorktreePrecedence(t *testing.T) {
	for _, bk := range allBranchKinds() {
		for _, rel := range allRelationships() {
			for _, ts := range allTreeStatuses() {
				scenario := Classify(stateFor(WorktreePR, bk, rel, ts))
				assert.Equal(t, ScenarioPRWorktree, scenario,
					"(%s, %s, %s)", bk, rel, ts)
			}
		}
	}
}

func TestClassify_DetachedHead(t *testing.T) {
	for _, rel := range allRelationships() {
		for _, ts := range allTreeStatuses() {
			scenario := Classify(stateFor(WorktreeMain, BranchDetached, rel, ts))
			assert.Equal(t, ScenarioDetachedHead, scenario)
		}
	}
}

func TestClassify_MainScenarios(t *testing.T) {
	tests := []struct {
		name     string
		rel      CommitRelationship
		status   TreeStatus
		expected Scenario
	}{
		{"clean same", RelationshipSame, TreeClean, ScenarioMainCleanSame},
		{"staged same", RelationshipSame, TreeHasStaged, ScenarioMainStagedSame},
		{"unstaged same", RelationshipSame, TreeHasUnstaged, ScenarioMainUnstagedSame},
		{"both same", RelationshipSame, TreeHasBoth, ScenarioMainBothSame},
		{"clean ahead", RelationshipAhead, TreeClean, ScenarioMainCleanAhead},
		{"staged ahead", RelationshipAhead, TreeHasStaged, ScenarioMainChangesAhead},
		{"unstaged ahead", RelationshipAhead, TreeHasUnstaged, ScenarioMainChangesAhead},
		{"both ahead", RelationshipAhead, TreeHasBoth, ScenarioMainChangesAhead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Classify(stateFor(WorktreeMain, BranchMain, tt.rel, tt.status))
			assert.Equal(t, tt.expected, scenario)
		})
	}
}

func TestClassify_FeatureScenarios(t *testing.T) {
	tests := []struct {
		name     string
		rel      CommitRelationship
		status   TreeStatus
		expected Scenario
	}{
		{"same as main", RelationshipSame, TreeClean, ScenarioBranchSameAsMain},
		{"same as main with changes", RelationshipSame, TreeHasBoth, ScenarioBranchSameAsMain},
		{"ancestor", RelationshipAncestor, TreeClean, ScenarioBranchAncestor},
		{"ancestor with changes", RelationshipAncestor, TreeHasUnstaged, ScenarioBranchAncestor},
		{"ahead clean", RelationshipAhead, TreeClean, ScenarioBranchDivergent},
		{"diverged clean", RelationshipDiverged, TreeClean, ScenarioBranchDivergent},
		{"ahead with staged", RelationshipAhead, TreeHasStaged, ScenarioBranchChanges},
		{"diverged with both", RelationshipDiverged, TreeHasBoth, ScenarioBranchChanges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Classify(stateFor(WorktreeMain, BranchFeature, tt.rel, tt.status))
			assert.Equal(t, tt.expected, scenario)
		})
	}
}

// main behind or diverged from its remote is unreachable by
// construction; the fallback maps it to the empty-commit scenario.
func TestClassify_FallbackForUnenumeratedMainStates(t *testing.T) {
	for _, rel := range []CommitRelationship{RelationshipAncestor, RelationshipDiverged} {
		scenario := Classify(stateFor(WorktreeMain, BranchMain, rel, TreeClean))
		assert.Equal(t, ScenarioMainCleanSame, scenario)
	}
}

func TestTreeStatusFor(t *testing.T) {
	assert.Equal(t, TreeClean, TreeStatusFor(nil, nil))
	assert.Equal(t, TreeHasStaged, TreeStatusFor([]string{"a"}, nil))
	assert.Equal(t, TreeHasUnstaged, TreeStatusFor(nil, []string{"b"}))
	assert.Equal(t, TreeHasBoth, TreeStatusFor([]string{"a"}, []string{"b"}))
}
