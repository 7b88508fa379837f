package release

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// tokenEnvVars are checked in order of precedence.
var tokenEnvVars = []string{"GITHUB_TOKEN", "GITHUB_ACCESS_TOKEN", "GH_TOKEN"}

// LoadGitHubToken returns the first GitHub token found in the environment,
// or the empty string when none is set. Release lookups work anonymously;
// a token only raises the API rate limit.
func LoadGitHubToken() string {
	for _, envVar := range tokenEnvVars {
		if token := os.Getenv(envVar); token != "" {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

// NewClient creates a GitHub API client over httpClient. A non-empty token
// authenticates requests through an OAuth2 transport; an empty token yields
// an anonymous client.
func NewClient(httpClient *http.Client, token string) *github.Client {
	if token == "" {
		return github.NewClient(httpClient)
	}

	ctx := context.Background()
	if httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}
