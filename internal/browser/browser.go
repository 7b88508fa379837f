package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/goliatone/gitweb/internal/executor"
)

// browserEnv is the conventional environment override honored when no
// explicit command is configured.
const browserEnv = "BROWSER"

// Launcher opens a URL in the host's web browser.
type Launcher interface {
	Open(ctx context.Context, url string) error
}

// launcher shells out to an external opener through the shared command
// runner. Command strings are split on whitespace; there is no shell
// involved and no quoting.
type launcher struct {
	runner    executor.CommandRunner
	command   string
	lookupEnv func(string) string
	goos      string
}

// New creates a Launcher. command is the configured browser command and may
// be empty, in which case the BROWSER environment variable and then the
// platform opener are used.
func New(runner executor.CommandRunner, command string) Launcher {
	return &launcher{
		runner:    runner,
		command:   command,
		lookupEnv: os.Getenv,
		goos:      runtime.GOOS,
	}
}

func (l *launcher) Open(ctx context.Context, url string) error {
	argv := append(l.resolve(), url)
	if _, err := l.runner.Run(ctx, "", argv[0], argv[1:]...); err != nil {
		return &LaunchError{URL: url, Command: argv, Err: err}
	}
	return nil
}

func (l *launcher) resolve() []string {
	if argv := strings.Fields(l.command); len(argv) > 0 {
		return argv
	}
	if argv := strings.Fields(l.lookupEnv(browserEnv)); len(argv) > 0 {
		return argv
	}
	switch l.goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		// start needs an explicit window title before the target.
		return []string{"cmd", "/c", "start", ""}
	default:
		return []string{"xdg-open"}
	}
}

// LaunchError indicates the browser command could not open the URL.
type LaunchError struct {
	URL     string
	Command []string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("browser: opening %s with %q: %v", e.URL, strings.Join(e.Command, " "), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func IsLaunchError(err error) bool {
	var target *LaunchError
	return errors.As(err, &target)
}
