package release

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
)

// DefaultOwner and DefaultRepo identify the repository whose releases are
// checked when none is configured.
const (
	DefaultOwner = "goliatone"
	DefaultRepo  = "gitweb"
)

// Release describes a published release.
type Release struct {
	Version string
	URL     string
}

// CheckResult reports how the running build relates to the latest release.
type CheckResult struct {
	Current  string
	Latest   string
	URL      string
	Outdated bool
}

// Checker looks up published releases.
type Checker interface {
	Latest(ctx context.Context) (*Release, error)
	Check(ctx context.Context, current string) (*CheckResult, error)
}

// githubChecker reads releases from the GitHub API.
type githubChecker struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHubChecker creates a Checker for owner/repo. Empty values fall back
// to the canonical gitweb repository.
func NewGitHubChecker(client *github.Client, owner, repo string) Checker {
	if owner == "" {
		owner = DefaultOwner
	}
	if repo == "" {
		repo = DefaultRepo
	}
	return &githubChecker{client: client, owner: owner, repo: repo}
}

func (c *githubChecker) Latest(ctx context.Context) (*Release, error) {
	latest, _, err := c.client.Repositories.GetLatestRelease(ctx, c.owner, c.repo)
	if err != nil {
		return nil, fmt.Errorf("release: fetch latest release of %s/%s: %w", c.owner, c.repo, err)
	}
	return &Release{
		Version: latest.GetTagName(),
		URL:     latest.GetHTMLURL(),
	}, nil
}

func (c *githubChecker) Check(ctx context.Context, current string) (*CheckResult, error) {
	latest, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}

	outdated, err := IsOutdated(current, latest.Version)
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Current:  current,
		Latest:   latest.Version,
		URL:      latest.URL,
		Outdated: outdated,
	}, nil
}
