package executor

import (
	"prflow/pkg/git"
)

// gitDeps adapts the git collaborator to the executor's Deps interface,
// bound to one repository and base branch.
type gitDeps struct {
	git        git.Git
	repoRoot   string
	baseBranch string
}

// NewGitDeps returns a Deps implementation backed by the git collaborator.
func NewGitDeps(g git.Git, repoRoot, baseBranch string) Deps {
	return &gitDeps{git: g, repoRoot: repoRoot, baseBranch: baseBranch}
}

func (d *gitDeps) Stage(path string) error {
	return d.git.Stage(d.repoRoot, path)
}

func (d *gitDeps) Stash(opts StashOptions) (string, error) {
	return d.git.Stash(git.StashParams{
		RepoPath:         d.repoRoot,
		Message:          opts.Message,
		KeepIndex:        opts.KeepIndex,
		IncludeUntracked: opts.IncludeUntracked,
	})
}

// Push pushes the named branch, defaulting to the bound base branch.
func (d *gitDeps) Push(opts PushOptions) error {
	branch := opts.Branch
	if branch == "" {
		branch = d.baseBranch
	}
	remote := opts.Remote
	if remote == "" {
		remote = "origin"
	}
	return d.git.Push(git.PushParams{
		RepoPath: d.repoRoot,
		Remote:   remote,
		Branch:   branch,
	})
}

func (d *gitDeps) Commit(opts CommitOptions) error {
	return d.git.Commit(git.CommitParams{
		RepoPath:   d.repoRoot,
		Message:    opts.Message,
		AllowEmpty: opts.AllowEmpty,
	})
}
