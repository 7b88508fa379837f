package executor

import (
	"errors"
	"fmt"
	"strings"
)

// StartError indicates an external program could not be started at all,
// typically because the binary is missing or not executable.
type StartError struct {
	Command []string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("executor: failed to start %q: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// ExitError indicates an external program started but exited non-zero.
// The captured standard error stream travels with it for diagnostics.
type ExitError struct {
	Command  []string
	Dir      string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("executor: %q exited with code %d", strings.Join(e.Command, " "), e.ExitCode)
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func IsStartError(err error) bool {
	var target *StartError
	return errors.As(err, &target)
}

func IsExitError(err error) bool {
	var target *ExitError
	return errors.As(err, &target)
}

// AsExitError extracts an ExitError if the error chain contains one.
func AsExitError(err error) (*ExitError, bool) {
	var target *ExitError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
