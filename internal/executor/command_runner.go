package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// defaultCommandRunner implements CommandRunner using os/exec.
type defaultCommandRunner struct{}

// NewDefaultCommandRunner creates a CommandRunner that shells out to the host system.
func NewDefaultCommandRunner() CommandRunner {
	return &defaultCommandRunner{}
}

// Run executes the named program in the specified directory.
func (r *defaultCommandRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Command:  commandLine(name, args),
				Dir:      dir,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
				Err:      err,
			}
		}
		return nil, &StartError{
			Command: commandLine(name, args),
			Err:     err,
		}
	}

	return splitLines(stdout.String()), nil
}

func commandLine(name string, args []string) []string {
	return append([]string{name}, args...)
}

// splitLines splits captured standard output into lines. The trailing
// line terminator is stripped and carriage returns are removed from line
// ends; the lines themselves are not trimmed beyond that.
func splitLines(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
