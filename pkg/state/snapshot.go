package state

import (
	"errors"
	"fmt"

	"prflow/pkg/git"
)

// NewSnapshot builds a GitState by querying the repository. It performs
// no mutations and no network access; fetching refs beforehand is the
// caller's concern.
func NewSnapshot(g git.Git, path, baseBranch string) (*GitState, error) {
	repoRoot, err := g.GetRepositoryRoot(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository root: %w", err)
	}

	repoName, err := g.GetRepositoryName(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository name: %w", err)
	}

	linked, err := g.IsLinkedWorktree(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect worktree: %w", err)
	}
	worktreeKind := WorktreeMain
	if linked {
		worktreeKind = WorktreePR
	}

	branchKind := BranchFeature
	currentBranch, err := g.GetCurrentBranch(repoRoot)
	switch {
	case errors.Is(err, git.ErrDetachedHead):
		branchKind = BranchDetached
		currentBranch = ""
	case err != nil:
		return nil, fmt.Errorf("failed to read current branch: %w", err)
	case currentBranch == baseBranch:
		branchKind = BranchMain
	}

	baseRef := resolveBaseRef(g, repoRoot, baseBranch)

	relationship, err := readRelationship(g, repoRoot, baseRef)
	if err != nil {
		return nil, err
	}

	localCommits, err := readLocalCommits(g, repoRoot, baseRef)
	if err != nil {
		return nil, err
	}

	stagedFiles, err := g.GetStagedFiles(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged files: %w", err)
	}

	unstagedFiles, err := g.GetUnstagedFiles(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read unstaged files: %w", err)
	}

	return &GitState{
		WorktreeKind:       worktreeKind,
		BranchKind:         branchKind,
		CurrentBranch:      currentBranch,
		CommitRelationship: relationship,
		WorkingTreeStatus:  TreeStatusFor(stagedFiles, unstagedFiles),
		LocalCommits:       localCommits,
		StagedFiles:        stagedFiles,
		UnstagedFiles:      unstagedFiles,
		RepoRoot:           repoRoot,
		RepoName:           repoName,
	}, nil
}

// resolveBaseRef prefers the remote-tracking base branch, falling back to
// the local base branch when the remote ref is absent (never fetched or
// offline clone).
func resolveBaseRef(g git.Git, repoRoot, baseBranch string) string {
	remoteRef := "origin/" + baseBranch
	if _, err := g.GetAheadBehind(repoRoot, remoteRef); err == nil {
		return remoteRef
	}
	return baseBranch
}

func readRelationship(g git.Git, repoRoot, baseRef string) (CommitRelationship, error) {
	counts, err := g.GetAheadBehind(repoRoot, baseRef)
	if err != nil {
		return "", fmt.Errorf("failed to compare HEAD with %s: %w", baseRef, err)
	}

	switch {
	case counts.Ahead == 0 && counts.Behind == 0:
		return RelationshipSame, nil
	case counts.Ahead > 0 && counts.Behind == 0:
		return RelationshipAhead, nil
	case counts.Ahead == 0 && counts.Behind > 0:
		return RelationshipAncestor, nil
	default:
		return RelationshipDiverged, nil
	}
}

func readLocalCommits(g git.Git, repoRoot, baseRef string) ([]CommitSummary, error) {
	commits, err := g.GetCommitsAhead(repoRoot, baseRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list local commits: %w", err)
	}

	summaries := make([]CommitSummary, 0, len(commits))
	for _, c := range commits {
		summaries = append(summaries, CommitSummary{Hash: c.Hash, Subject: c.Subject})
	}
	return summaries, nil
}
