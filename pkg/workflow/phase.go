package workflow

// phase is the orchestrator's position in the workflow. Rollback
// applicability is a property of the phase, not of code position.
type phase int

// Workflow phases, in execution order.
const (
	phaseStart phase = iota
	phaseFetched
	phaseClassified
	phaseActionSelected
	phasePreBranchExecuted
	phaseBranched
	phaseCommitted
	phasePushed
	phasePRCreated
	phaseWorktreeCreated
	phaseDone
)

var phaseNames = map[phase]string{
	phaseStart:             "start",
	phaseFetched:           "fetched",
	phaseClassified:        "classified",
	phaseActionSelected:    "action-selected",
	phasePreBranchExecuted: "pre-branch-executed",
	phaseBranched:          "branched",
	phaseCommitted:         "committed",
	phasePushed:            "pushed",
	phasePRCreated:         "pr-created",
	phaseWorktreeCreated:   "worktree-created",
	phaseDone:              "done",
}

func (p phase) String() string {
	return phaseNames[p]
}

// rollbackApplies reports whether a failure at this phase must run the
// rollback sequence: cleanup hook, stash restore, then the original
// error. Failures before the executor has run mutate nothing and
// surface immediately.
func (p phase) rollbackApplies() bool {
	return p >= phasePreBranchExecuted && p < phaseDone
}
