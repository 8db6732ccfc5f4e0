package state

// Scenario is the closed classification of repository state used to
// select a remediation action.
type Scenario string

// The twelve scenarios.
const (
	ScenarioMainCleanSame    Scenario = "main_clean_same"
	ScenarioMainStagedSame   Scenario = "main_staged_same"
	ScenarioMainUnstagedSame Scenario = "main_unstaged_same"
	ScenarioMainBothSame     Scenario = "main_both_same"
	ScenarioMainCleanAhead   Scenario = "main_clean_ahead"
	ScenarioMainChangesAhead Scenario = "main_changes_ahead"
	ScenarioBranchSameAsMain Scenario = "branch_same_as_main"
	ScenarioBranchAncestor   Scenario = "branch_ancestor"
	ScenarioBranchDivergent  Scenario = "branch_divergent"
	ScenarioBranchChanges    Scenario = "branch_with_changes"
	ScenarioDetachedHead     Scenario = "detached_head"
	ScenarioPRWorktree       Scenario = "pr_worktree"
)

// AllScenarios returns every scenario value.
func AllScenarios() []Scenario {
	return []Scenario{
		ScenarioMainCleanSame,
		ScenarioMainStagedSame,
		ScenarioMainUnstagedSame,
		ScenarioMainBothSame,
		ScenarioMainCleanAhead,
		ScenarioMainChangesAhead,
		ScenarioBranchSameAsMain,
		ScenarioBranchAncestor,
		ScenarioBranchDivergent,
		ScenarioBranchChanges,
		ScenarioDetachedHead,
		ScenarioPRWorktree,
	}
}
