// Package forge abstracts the pull request hosting services (GitHub,
// GitLab) behind a single client interface selected by remote URL.
package forge

import (
	"context"
	"fmt"
	"strings"

	"prflow/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// PullRequest holds the forge-independent view of a pull request.
type PullRequest struct {
	Number int
	URL    string
	Title  string
	State  string
	Head   string
	Base   string
}

// CreatePRParams contains parameters for creating a pull request.
type CreatePRParams struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Client performs pull request operations against one repository on
// one forge.
type Client interface {
	// Name returns the name of the forge backing this client.
	Name() string

	// CheckAuth verifies the configured credentials before any workflow
	// step runs. Returns ErrTokenMissing or ErrNotAuthenticated.
	CheckAuth(ctx context.Context) error

	// CreatePR creates a pull request.
	CreatePR(ctx context.Context, params CreatePRParams) (*PullRequest, error)

	// GetOpenPRForBranch finds the open pull request whose head is the
	// given branch. Returns ErrPRNotFound when there is none.
	GetOpenPRForBranch(ctx context.Context, branch string) (*PullRequest, error)
}

// Forge constructs clients for repositories it recognizes by remote URL.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// Matches reports whether the remote URL belongs to this forge.
	Matches(remoteURL string) bool

	// NewClient creates a client bound to the repository behind the
	// remote URL.
	NewClient(remoteURL string) (Client, error)
}

// ManagerInterface defines the interface for forge selection.
type ManagerInterface interface {
	// ClientFor returns a client for the forge matching the remote URL.
	ClientFor(remoteURL string) (Client, error)
}

// Manager selects among the registered forge implementations.
type Manager struct {
	forges []Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Manager{
		forges: []Forge{NewGitHub(), NewGitLab()},
		logger: log,
	}
}

// ClientFor returns a client for the forge matching the remote URL.
func (m *Manager) ClientFor(remoteURL string) (Client, error) {
	for _, f := range m.forges {
		if f.Matches(remoteURL) {
			m.logger.Logf("using %s forge for %s", f.Name(), remoteURL)
			return f.NewClient(remoteURL)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, remoteURL)
}

// parseRepoFromURL extracts owner and repository from a git remote URL,
// accepting both SSH (git@host:owner/repo.git) and HTTP(S) forms.
func parseRepoFromURL(remoteURL string) (owner, repo string, err error) {
	if strings.HasPrefix(remoteURL, "git@") {
		parts := strings.SplitN(remoteURL, ":", 2)
		if len(parts) != 2 {
			return "", "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
		}
		path := strings.TrimSuffix(parts[1], ".git")
		pathParts := strings.Split(path, "/")
		if len(pathParts) < 2 {
			return "", "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
		}
		return pathParts[len(pathParts)-2], pathParts[len(pathParts)-1], nil
	}

	trimmed := strings.TrimPrefix(remoteURL, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	trimmed = strings.TrimSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRemoteURL, remoteURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
