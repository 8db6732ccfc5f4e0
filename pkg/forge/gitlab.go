package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/xanzy/go-gitlab"
)

const (
	// GitLabName is the name identifier for the GitLab forge.
	GitLabName = "gitlab"
	// GitLabDomain is the gitlab.com domain for remote URL matching.
	GitLabDomain = "gitlab.com"
)

// GitLab represents the GitLab forge implementation. Merge requests
// are surfaced through the same PullRequest type as GitHub.
type GitLab struct{}

// NewGitLab creates a new GitLab forge instance.
func NewGitLab() *GitLab {
	return &GitLab{}
}

// Name returns the name of the forge.
func (g *GitLab) Name() string {
	return GitLabName
}

// Matches reports whether the remote URL belongs to GitLab. Self-hosted
// instances are recognized by a "gitlab" substring in the host.
func (g *GitLab) Matches(remoteURL string) bool {
	return strings.Contains(strings.ToLower(remoteURL), "gitlab")
}

// NewClient creates a client bound to the project behind the remote URL.
func (g *GitLab) NewClient(remoteURL string) (Client, error) {
	owner, repo, err := parseRepoFromURL(remoteURL)
	if err != nil {
		return nil, err
	}

	token := os.Getenv("GITLAB_TOKEN")
	if token == "" {
		token = os.Getenv("GIT_TOKEN")
	}
	if token == "" {
		// The client is still usable for CheckAuth to report the
		// missing token as a precondition failure.
		return &gitlabClient{projectID: owner + "/" + repo}, nil
	}

	opts := []gitlab.ClientOptionFunc{}
	if baseURL := selfHostedBaseURL(remoteURL); baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &gitlabClient{
		client:    client,
		projectID: owner + "/" + repo,
		token:     token,
	}, nil
}

// selfHostedBaseURL extracts the instance URL for non-gitlab.com remotes.
func selfHostedBaseURL(remoteURL string) string {
	if strings.Contains(remoteURL, GitLabDomain) {
		return ""
	}
	trimmed := strings.TrimPrefix(remoteURL, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	if at := strings.Index(trimmed, "@"); at >= 0 {
		trimmed = trimmed[at+1:]
	}
	host := trimmed
	if i := strings.IndexAny(trimmed, ":/"); i >= 0 {
		host = trimmed[:i]
	}
	if host == "" {
		return ""
	}
	return "https://" + host
}

type gitlabClient struct {
	client    *gitlab.Client
	projectID string
	token     string
}

// Name returns the name of the forge backing this client.
func (c *gitlabClient) Name() string {
	return GitLabName
}

// CheckAuth verifies the configured token against the GitLab API.
func (c *gitlabClient) CheckAuth(ctx context.Context) error {
	if c.token == "" {
		return fmt.Errorf("%w: set GITLAB_TOKEN", ErrTokenMissing)
	}

	_, resp, err := c.client.Users.CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: check GITLAB_TOKEN", ErrNotAuthenticated)
		}
		return fmt.Errorf("failed to verify GitLab credentials: %w", err)
	}
	return nil
}

// CreatePR creates a merge request.
func (c *gitlabClient) CreatePR(ctx context.Context, params CreatePRParams) (*PullRequest, error) {
	title := params.Title
	if params.Draft {
		title = "Draft: " + title
	}

	mr, resp, err := c.client.MergeRequests.CreateMergeRequest(c.projectID, &gitlab.CreateMergeRequestOptions{
		Title:        gitlab.Ptr(title),
		Description:  gitlab.Ptr(params.Body),
		SourceBranch: gitlab.Ptr(params.Head),
		TargetBranch: gitlab.Ptr(params.Base),
	}, gitlab.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			return nil, fmt.Errorf("%w: head %s", ErrPRExists, params.Head)
		}
		if resp != nil && resp.StatusCode == http.StatusBadRequest &&
			strings.Contains(err.Error(), "No commits between") {
			return nil, fmt.Errorf("%w: %s..%s", ErrNoCommits, params.Base, params.Head)
		}
		return nil, fmt.Errorf("failed to create merge request: %w", err)
	}

	return prFromGitLab(mr), nil
}

// GetOpenPRForBranch finds the open merge request whose source is the given branch.
func (c *gitlabClient) GetOpenPRForBranch(ctx context.Context, branch string) (*PullRequest, error) {
	mrs, _, err := c.client.MergeRequests.ListProjectMergeRequests(c.projectID, &gitlab.ListProjectMergeRequestsOptions{
		State:        gitlab.Ptr("opened"),
		SourceBranch: gitlab.Ptr(branch),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}

	if len(mrs) == 0 {
		return nil, fmt.Errorf("%w: branch %s", ErrPRNotFound, branch)
	}
	return prFromGitLab(mrs[0]), nil
}

func prFromGitLab(mr *gitlab.MergeRequest) *PullRequest {
	state := mr.State
	if state == "opened" {
		state = "open"
	}
	return &PullRequest{
		Number: mr.IID,
		URL:    mr.WebURL,
		Title:  mr.Title,
		State:  state,
		Head:   mr.SourceBranch,
		Base:   mr.TargetBranch,
	}
}
