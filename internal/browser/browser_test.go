package browser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/gitweb/internal/executor"
)

type fakeRunner struct {
	calls [][]string
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func noEnv(string) string { return "" }

func TestOpen_ExplicitCommand(t *testing.T) {
	runner := &fakeRunner{}
	l := &launcher{
		runner:    runner,
		command:   "firefox --new-window",
		lookupEnv: noEnv,
		goos:      "linux",
	}

	if err := l.Open(context.Background(), "https://github.com/acme/widget"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	want := [][]string{{"firefox", "--new-window", "https://github.com/acme/widget"}}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_BrowserEnvFallback(t *testing.T) {
	runner := &fakeRunner{}
	l := &launcher{
		runner:  runner,
		command: "",
		lookupEnv: func(key string) string {
			if key == "BROWSER" {
				return "chromium"
			}
			return ""
		},
		goos: "linux",
	}

	if err := l.Open(context.Background(), "https://github.com/acme/widget"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	want := [][]string{{"chromium", "https://github.com/acme/widget"}}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestOpen_ConfiguredCommandBeatsEnv(t *testing.T) {
	runner := &fakeRunner{}
	l := &launcher{
		runner:    runner,
		command:   "firefox",
		lookupEnv: func(string) string { return "chromium" },
		goos:      "linux",
	}

	if err := l.Open(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if runner.calls[0][0] != "firefox" {
		t.Errorf("command = %q, want configured command over BROWSER", runner.calls[0][0])
	}
}

func TestOpen_PlatformDefaults(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "https://example.com"}},
		{"windows", []string{"cmd", "/c", "start", "", "https://example.com"}},
		{"linux", []string{"xdg-open", "https://example.com"}},
		{"freebsd", []string{"xdg-open", "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			runner := &fakeRunner{}
			l := &launcher{runner: runner, lookupEnv: noEnv, goos: tt.goos}

			if err := l.Open(context.Background(), "https://example.com"); err != nil {
				t.Fatalf("Open returned error: %v", err)
			}
			if diff := cmp.Diff([][]string{tt.want}, runner.calls); diff != "" {
				t.Errorf("command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpen_WhitespaceCommandFallsThrough(t *testing.T) {
	runner := &fakeRunner{}
	l := &launcher{runner: runner, command: "   ", lookupEnv: noEnv, goos: "linux"}

	if err := l.Open(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if runner.calls[0][0] != "xdg-open" {
		t.Errorf("command = %q, want platform default for blank configuration", runner.calls[0][0])
	}
}

func TestOpen_WrapsRunnerFailure(t *testing.T) {
	startErr := &executor.StartError{
		Command: []string{"xdg-open", "https://example.com"},
		Err:     errors.New("executable file not found in $PATH"),
	}
	runner := &fakeRunner{err: startErr}
	l := &launcher{runner: runner, lookupEnv: noEnv, goos: "linux"}

	err := l.Open(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("expected error when the opener cannot start")
	}
	if !IsLaunchError(err) {
		t.Errorf("IsLaunchError = false for %v", err)
	}
	if !executor.IsStartError(err) {
		t.Errorf("launch error does not unwrap to the start failure: %v", err)
	}
	if !strings.Contains(err.Error(), "https://example.com") {
		t.Errorf("error %q does not name the URL", err)
	}
}
