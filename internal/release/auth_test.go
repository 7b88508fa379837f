package release

import (
	"context"
	"net/http"
	"testing"
)

func clearTokenEnv(t *testing.T) {
	t.Helper()
	for _, envVar := range tokenEnvVars {
		t.Setenv(envVar, "")
	}
}

func TestLoadGitHubToken_Precedence(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("GH_TOKEN", "gh-token")
	t.Setenv("GITHUB_TOKEN", "github-token")

	if got := LoadGitHubToken(); got != "github-token" {
		t.Errorf("token = %q, want GITHUB_TOKEN to win", got)
	}
}

func TestLoadGitHubToken_FallsBackToGHToken(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("GH_TOKEN", "  gh-token  ")

	if got := LoadGitHubToken(); got != "gh-token" {
		t.Errorf("token = %q, want trimmed GH_TOKEN", got)
	}
}

func TestLoadGitHubToken_Unset(t *testing.T) {
	clearTokenEnv(t)

	if got := LoadGitHubToken(); got != "" {
		t.Errorf("token = %q, want empty when nothing is set", got)
	}
}

// headerRecorder captures the Authorization header of each request.
type headerRecorder struct {
	auth []string
}

func (r *headerRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	r.auth = append(r.auth, req.Header.Get("Authorization"))
	return &http.Response{
		StatusCode: 404,
		Body:       http.NoBody,
		Header:     make(http.Header),
	}, nil
}

func TestNewClient_AttachesToken(t *testing.T) {
	recorder := &headerRecorder{}
	client := NewClient(&http.Client{Transport: recorder}, "secret-token")

	checker := NewGitHubChecker(client, "", "")
	checker.Latest(context.Background())

	if len(recorder.auth) == 0 {
		t.Fatal("no request was made")
	}
	if got := recorder.auth[0]; got != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", got)
	}
}

func TestNewClient_Anonymous(t *testing.T) {
	recorder := &headerRecorder{}
	client := NewClient(&http.Client{Transport: recorder}, "")

	checker := NewGitHubChecker(client, "", "")
	checker.Latest(context.Background())

	if len(recorder.auth) == 0 {
		t.Fatal("no request was made")
	}
	if got := recorder.auth[0]; got != "" {
		t.Errorf("Authorization = %q, want no credentials", got)
	}
}
