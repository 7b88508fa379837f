package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/gitweb/pkg/config"
	"github.com/goliatone/gitweb/pkg/di"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitConfigError     = 2 // Configuration error
	ExitValidationError = 3 // Flag or argument validation error
	ExitNoRemotesError  = 4 // Repository has no remotes configured
	ExitAddressError    = 5 // Remote address not recognized as a forge URL
	ExitGitError        = 6 // Git could not be started or exited non-zero
	ExitLaunchError     = 7 // Browser launch failure
)

// Global variables for CLI state
var (
	container di.Container
	cfg       *config.Config
)

func main() {
	if err := execute(); err != nil {
		// Handle structured errors with appropriate exit codes
		if cliErr, ok := err.(*CLIError); ok {
			fmt.Fprintf(os.Stderr, "gitweb: %s\n", cliErr.Message)
			if cliErr.Cause != nil {
				fmt.Fprintf(os.Stderr, "  Cause: %v\n", cliErr.Cause)
			}
			os.Exit(cliErr.ExitCode())
		}

		// Handle other error types
		fmt.Fprintf(os.Stderr, "gitweb: %v\n", err)
		os.Exit(ExitGenericError)
	}
}

// execute wires the signal-aware root context and runs the CLI
func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}
