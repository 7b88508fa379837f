package main

import "fmt"

// CLIError carries a user-facing message and the process exit code for main.
type CLIError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) ExitCode() int {
	return e.Code
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// Error creation helpers for structured error handling

func newConfigError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitConfigError, Message: message, Cause: cause}
}

func newValidationError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitValidationError, Message: message, Cause: cause}
}

func newNoRemotesError() *CLIError {
	return &CLIError{Code: ExitNoRemotesError, Message: "no remote is found"}
}

func newAddressError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitAddressError, Message: message, Cause: cause}
}

func newGitError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitGitError, Message: message, Cause: cause}
}

func newLaunchError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitLaunchError, Message: message, Cause: cause}
}

func newGenericError(message string, cause error) *CLIError {
	return &CLIError{Code: ExitGenericError, Message: message, Cause: cause}
}
