package state

// Classify maps a repository state snapshot to its scenario. It is pure
// and total: every snapshot maps to exactly one of the twelve scenarios,
// with the PR-worktree check taking precedence over every other field.
func Classify(s *GitState) Scenario {
	// A worktree checked out for an existing PR is flagged regardless of
	// branch or commit state.
	if s.WorktreeKind == WorktreePR {
		return ScenarioPRWorktree
	}

	if s.BranchKind == BranchDetached {
		return ScenarioDetachedHead
	}

	if s.BranchKind == BranchMain {
		return classifyMain(s)
	}

	return classifyFeature(s)
}

func classifyMain(s *GitState) Scenario {
	switch s.CommitRelationship {
	case RelationshipSame:
		switch s.WorkingTreeStatus {
		case TreeClean:
			return ScenarioMainCleanSame
		case TreeHasStaged:
			return ScenarioMainStagedSame
		case TreeHasUnstaged:
			return ScenarioMainUnstagedSame
		case TreeHasBoth:
			return ScenarioMainBothSame
		}
	case RelationshipAhead:
		if s.WorkingTreeStatus == TreeClean {
			return ScenarioMainCleanAhead
		}
		return ScenarioMainChangesAhead
	}

	// FALLBACK: main behind or diverged from its own remote is not an
	// enumerated scenario. The safe default is the empty-commit flow, so
	// this maps to main_clean_same rather than failing. If this fires in
	// practice the classifier is missing a case.
	return ScenarioMainCleanSame
}

func classifyFeature(s *GitState) Scenario {
	switch s.CommitRelationship {
	case RelationshipSame:
		return ScenarioBranchSameAsMain
	case RelationshipAncestor:
		return ScenarioBranchAncestor
	case RelationshipAhead, RelationshipDiverged:
		if s.WorkingTreeStatus == TreeClean {
			return ScenarioBranchDivergent
		}
		return ScenarioBranchChanges
	}

	// FALLBACK: unreachable given the CommitRelationship enumeration; see
	// the note in classifyMain.
	return ScenarioMainCleanSame
}
