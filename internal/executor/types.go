package executor

import "context"

// CommandRunner defines the interface for executing external commands.
// Implementations capture both output streams and keep "could not be
// started" and "started but exited non-zero" as distinct error kinds
// (StartError and ExitError) so callers can tell a missing binary apart
// from a failing one.
type CommandRunner interface {
	// Run executes name with args in dir (empty means the process working
	// directory). On success it returns standard output split into lines
	// and discards standard error. On non-zero exit the captured standard
	// error text travels in the returned ExitError.
	Run(ctx context.Context, dir string, name string, args ...string) ([]string, error)
}
