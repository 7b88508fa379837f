package di

import (
	"net/http"

	"github.com/goliatone/gitweb/internal/release"
	"github.com/goliatone/gitweb/pkg/config"
)

// provideConfigWithDefaults creates a configuration with defaults applied,
// for containers constructed without an explicit config.
func provideConfigWithDefaults() *config.Config {
	cfg := config.New()
	config.ApplyDefaults(cfg)
	return cfg
}

// provideReleases creates the release checker against the canonical gitweb
// repository. Credentials are loaded from the environment only when the
// container was built for a release-checking command; anonymous lookups
// work fine otherwise, just with a lower rate limit.
func provideReleases(httpClient *http.Client, authenticated bool) release.Checker {
	token := ""
	if authenticated {
		token = release.LoadGitHubToken()
	}
	client := release.NewClient(httpClient, token)
	return release.NewGitHubChecker(client, release.DefaultOwner, release.DefaultRepo)
}
