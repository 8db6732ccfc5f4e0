//go:build integration

package git

import (
	"errors"
	"testing"
)

func TestGit_Stash_ReturnsReference(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	WriteTestFile(t, repoPath, "README.md", "# Modified\n")

	ref, err := git.Stash(StashParams{
		RepoPath: repoPath,
		Message:  "prflow: auto-stash before creating feature/test",
	})
	if err != nil {
		t.Fatalf("Stash failed: %v", err)
	}
	if ref == "" {
		t.Fatal("Expected non-empty stash reference")
	}

	// Working tree is clean after stashing
	unstaged, err := git.GetUnstagedFiles(repoPath)
	if err != nil {
		t.Fatalf("GetUnstagedFiles failed: %v", err)
	}
	if len(unstaged) != 0 {
		t.Errorf("Expected clean tree after stash, got %v", unstaged)
	}
}

func TestGit_Stash_NoChanges(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	_, err := git.Stash(StashParams{RepoPath: repoPath, Message: "nothing"})
	if err == nil {
		t.Fatal("Expected error when stashing with no changes")
	}
	if !errors.Is(err, ErrStashCreationFailed) {
		t.Errorf("Expected ErrStashCreationFailed, got %v", err)
	}
}

func TestGit_StashPop(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	WriteTestFile(t, repoPath, "README.md", "# Modified\n")
	ref, err := git.Stash(StashParams{RepoPath: repoPath, Message: "test stash"})
	if err != nil {
		t.Fatalf("Stash failed: %v", err)
	}

	if err := git.StashPop(repoPath, ref); err != nil {
		t.Fatalf("StashPop failed: %v", err)
	}

	unstaged, err := git.GetUnstagedFiles(repoPath)
	if err != nil {
		t.Fatalf("GetUnstagedFiles failed: %v", err)
	}
	if len(unstaged) != 1 || unstaged[0] != "README.md" {
		t.Errorf("Expected [README.md] after pop, got %v", unstaged)
	}
}

func TestGit_StashApplyAndDrop(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	WriteTestFile(t, repoPath, "README.md", "# Modified\n")
	ref, err := git.Stash(StashParams{RepoPath: repoPath, Message: "test stash"})
	if err != nil {
		t.Fatalf("Stash failed: %v", err)
	}

	if err := git.StashApply(repoPath, ref); err != nil {
		t.Fatalf("StashApply failed: %v", err)
	}
	if err := git.StashDrop(repoPath, ref); err != nil {
		t.Fatalf("StashDrop failed: %v", err)
	}

	// Dropping again must fail: the stash is gone
	if err := git.StashDrop(repoPath, ref); err == nil {
		t.Error("Expected error dropping a missing stash")
	}
}

func TestGit_Stash_ReferenceSurvivesLaterStashes(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	WriteTestFile(t, repoPath, "README.md", "# First modification\n")
	firstRef, err := git.Stash(StashParams{RepoPath: repoPath, Message: "first"})
	if err != nil {
		t.Fatalf("First stash failed: %v", err)
	}

	WriteTestFile(t, repoPath, "README.md", "# Second modification\n")
	if _, err := git.Stash(StashParams{RepoPath: repoPath, Message: "second"}); err != nil {
		t.Fatalf("Second stash failed: %v", err)
	}

	// The first reference still resolves even though it is now stash@{1}
	if err := git.StashPop(repoPath, firstRef); err != nil {
		t.Fatalf("StashPop of first stash failed: %v", err)
	}
}

func TestGit_Stash_KeepIndex(t *testing.T) {
	git := NewGit()
	repoPath := SetupTestRepo(t)

	WriteTestFile(t, repoPath, "staged.txt", "staged\n")
	if err := git.Stage(repoPath, "staged.txt"); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}
	WriteTestFile(t, repoPath, "README.md", "# Unstaged change\n")

	_, err := git.Stash(StashParams{
		RepoPath:  repoPath,
		Message:   "keep index",
		KeepIndex: true,
	})
	if err != nil {
		t.Fatalf("Stash failed: %v", err)
	}

	// Staged file must remain staged
	staged, err := git.GetStagedFiles(repoPath)
	if err != nil {
		t.Fatalf("GetStagedFiles failed: %v", err)
	}
	if len(staged) != 1 || staged[0] != "staged.txt" {
		t.Errorf("Expected [staged.txt] still staged, got %v", staged)
	}
}
