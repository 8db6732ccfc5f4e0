//go:build unit

package forge

import (
	"context"
	"testing"

	"prflow/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ClientFor(t *testing.T) {
	manager := NewManager(logger.NewNoopLogger())

	tests := []struct {
		name      string
		remoteURL string
		forge     string
	}{
		{"github https", "https://github.com/octocat/hello-world.git", GitHubName},
		{"github ssh", "git@github.com:octocat/hello-world.git", GitHubName},
		{"gitlab https", "https://gitlab.com/group/project.git", GitLabName},
		{"gitlab self-hosted", "https://gitlab.example.com/group/project.git", GitLabName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := manager.ClientFor(tt.remoteURL)
			require.NoError(t, err)
			assert.Equal(t, tt.forge, client.Name())
		})
	}
}

func TestManager_ClientFor_Unsupported(t *testing.T) {
	manager := NewManager(logger.NewNoopLogger())

	_, err := manager.ClientFor("https://bitbucket.org/team/repo.git")
	assert.ErrorIs(t, err, ErrUnsupportedForge)
}

func TestParseRepoFromURL(t *testing.T) {
	tests := []struct {
		name      string
		remoteURL string
		owner     string
		repo      string
		wantErr   bool
	}{
		{"https with .git", "https://github.com/octocat/hello-world.git", "octocat", "hello-world", false},
		{"https without .git", "https://github.com/octocat/hello-world", "octocat", "hello-world", false},
		{"ssh", "git@github.com:octocat/hello-world.git", "octocat", "hello-world", false},
		{"gitlab subgroup", "https://gitlab.com/group/sub/project.git", "sub", "project", false},
		{"ssh subgroup", "git@gitlab.com:group/sub/project.git", "sub", "project", false},
		{"bare host", "https://github.com", "", "", true},
		{"garbage", "not a url", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := parseRepoFromURL(tt.remoteURL)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRemoteURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

func TestGitHub_Matches(t *testing.T) {
	github := NewGitHub()

	assert.True(t, github.Matches("https://github.com/octocat/hello-world.git"))
	assert.True(t, github.Matches("git@github.com:octocat/hello-world.git"))
	assert.False(t, github.Matches("https://gitlab.com/group/project.git"))
}

func TestGitHub_CheckAuth_MissingToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GIT_TOKEN", "")

	client, err := NewGitHub().NewClient("https://github.com/octocat/hello-world.git")
	require.NoError(t, err)

	err = client.CheckAuth(context.Background())
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestGitLab_Matches(t *testing.T) {
	gl := NewGitLab()

	assert.True(t, gl.Matches("https://gitlab.com/group/project.git"))
	assert.True(t, gl.Matches("git@gitlab.example.com:group/project.git"))
	assert.False(t, gl.Matches("https://github.com/octocat/hello-world.git"))
}

func TestGitLab_CheckAuth_MissingToken(t *testing.T) {
	t.Setenv("GITLAB_TOKEN", "")
	t.Setenv("GIT_TOKEN", "")

	client, err := NewGitLab().NewClient("https://gitlab.com/group/project.git")
	require.NoError(t, err)

	err = client.CheckAuth(context.Background())
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestSelfHostedBaseURL(t *testing.T) {
	assert.Empty(t, selfHostedBaseURL("https://gitlab.com/group/project.git"))
	assert.Equal(t, "https://gitlab.example.com",
		selfHostedBaseURL("https://gitlab.example.com/group/project.git"))
	assert.Equal(t, "https://gitlab.example.com",
		selfHostedBaseURL("git@gitlab.example.com:group/project.git"))
}
