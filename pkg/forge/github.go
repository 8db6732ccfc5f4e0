package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	// GitHubName is the name identifier for the GitHub forge.
	GitHubName = "github"
	// GitHubDomain is the GitHub domain for remote URL matching.
	GitHubDomain = "github.com"

	requestTimeout = 10 * time.Second
)

// GitHub represents the GitHub forge implementation.
type GitHub struct{}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	return &GitHub{}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// Matches reports whether the remote URL belongs to GitHub.
func (g *GitHub) Matches(remoteURL string) bool {
	return strings.Contains(strings.ToLower(remoteURL), GitHubDomain)
}

// NewClient creates a client bound to the repository behind the remote URL.
func (g *GitHub) NewClient(remoteURL string) (Client, error) {
	owner, repo, err := parseRepoFromURL(remoteURL)
	if err != nil {
		return nil, err
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GIT_TOKEN")
	}

	client := github.NewClient(nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	}

	return &githubClient{
		client: client,
		owner:  owner,
		repo:   repo,
		token:  token,
	}, nil
}

type githubClient struct {
	client *github.Client
	owner  string
	repo   string
	token  string
}

// Name returns the name of the forge backing this client.
func (c *githubClient) Name() string {
	return GitHubName
}

// CheckAuth verifies the configured token against the GitHub API.
func (c *githubClient) CheckAuth(ctx context.Context) error {
	if c.token == "" {
		return fmt.Errorf("%w: set GITHUB_TOKEN", ErrTokenMissing)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	_, resp, err := c.client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return fmt.Errorf("%w: check GITHUB_TOKEN", ErrNotAuthenticated)
		}
		return fmt.Errorf("failed to verify GitHub credentials: %w", err)
	}
	return nil
}

// CreatePR creates a pull request.
func (c *githubClient) CreatePR(ctx context.Context, params CreatePRParams) (*PullRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	pr, resp, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, &github.NewPullRequest{
		Title: github.String(params.Title),
		Body:  github.String(params.Body),
		Head:  github.String(params.Head),
		Base:  github.String(params.Base),
		Draft: github.Bool(params.Draft),
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			if strings.Contains(err.Error(), "A pull request already exists") {
				return nil, fmt.Errorf("%w: head %s", ErrPRExists, params.Head)
			}
			if strings.Contains(err.Error(), "No commits between") {
				return nil, fmt.Errorf("%w: %s..%s", ErrNoCommits, params.Base, params.Head)
			}
		}
		return nil, fmt.Errorf("failed to create pull request: %w", c.wrapAPIError(err, resp))
	}

	return prFromGitHub(pr), nil
}

// GetOpenPRForBranch finds the open pull request whose head is the given branch.
func (c *githubClient) GetOpenPRForBranch(ctx context.Context, branch string) (*PullRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	prs, resp, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		State: "open",
		Head:  c.owner + ":" + branch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", c.wrapAPIError(err, resp))
	}

	if len(prs) == 0 {
		return nil, fmt.Errorf("%w: branch %s", ErrPRNotFound, branch)
	}
	return prFromGitHub(prs[0]), nil
}

func (c *githubClient) wrapAPIError(err error, resp *github.Response) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN", ErrNotAuthenticated)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub", ErrRateLimited)
			}
		}
	}
	return err
}

func prFromGitHub(pr *github.PullRequest) *PullRequest {
	return &PullRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
		Title:  pr.GetTitle(),
		State:  pr.GetState(),
		Head:   pr.GetHead().GetRef(),
		Base:   pr.GetBase().GetRef(),
	}
}
