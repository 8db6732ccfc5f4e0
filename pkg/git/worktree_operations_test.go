//go:build integration

package git

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestGit_AddWorktree(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	runTestGit(t, repoPath, "branch", "feature/wt")

	worktreePath := filepath.Join(t.TempDir(), "feature-wt")
	err := git.AddWorktree(AddWorktreeParams{
		RepoPath:     repoPath,
		WorktreePath: worktreePath,
		Branch:       "feature/wt",
	})
	if err != nil {
		t.Fatalf("AddWorktree failed: %v", err)
	}

	branch, err := git.GetCurrentBranch(worktreePath)
	if err != nil {
		t.Fatalf("GetCurrentBranch in worktree failed: %v", err)
	}
	if branch != "feature/wt" {
		t.Errorf("Expected feature/wt, got %s", branch)
	}
}

func TestGit_AddWorktree_BranchBusy(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	// main is checked out in the primary worktree already
	err := git.AddWorktree(AddWorktreeParams{
		RepoPath:     repoPath,
		WorktreePath: filepath.Join(t.TempDir(), "main-wt"),
		Branch:       "main",
	})
	if err == nil {
		t.Fatal("Expected error adding worktree for checked-out branch")
	}
}

func TestGit_IsLinkedWorktree(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	linked, err := git.IsLinkedWorktree(repoPath)
	if err != nil {
		t.Fatalf("IsLinkedWorktree failed: %v", err)
	}
	if linked {
		t.Error("Expected main worktree to not be linked")
	}

	runTestGit(t, repoPath, "branch", "feature/linked")
	worktreePath := filepath.Join(t.TempDir(), "linked-wt")
	if err := git.AddWorktree(AddWorktreeParams{
		RepoPath:     repoPath,
		WorktreePath: worktreePath,
		Branch:       "feature/linked",
	}); err != nil {
		t.Fatalf("AddWorktree failed: %v", err)
	}

	linked, err = git.IsLinkedWorktree(worktreePath)
	if err != nil {
		t.Fatalf("IsLinkedWorktree failed: %v", err)
	}
	if !linked {
		t.Error("Expected secondary worktree to be linked")
	}
}

func TestGit_AddWorktree_PathExists(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	runTestGit(t, repoPath, "branch", "feature/dup")
	worktreePath := filepath.Join(t.TempDir(), "dup-wt")

	params := AddWorktreeParams{
		RepoPath:     repoPath,
		WorktreePath: worktreePath,
		Branch:       "feature/dup",
	}
	if err := git.AddWorktree(params); err != nil {
		t.Fatalf("AddWorktree failed: %v", err)
	}

	err := git.AddWorktree(params)
	if err == nil {
		t.Fatal("Expected error for existing worktree")
	}
	if !errors.Is(err, ErrWorktreeExists) {
		t.Errorf("Expected ErrWorktreeExists, got %v", err)
	}
}
