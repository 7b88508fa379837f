package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goliatone/gitweb/pkg/config"
	"github.com/goliatone/gitweb/pkg/di"
	"github.com/spf13/cobra"
)

// newRootCommand creates the root cobra command with all subcommands
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitweb",
		Short: "Open the web page of a repository's git remote in the browser",
		Long: `gitweb resolves the remotes configured for the enclosing git repository,
derives the https web URL for the chosen remote, and opens it with the
platform browser. With a single remote it opens immediately; with several
it lists them and prompts for a 0-based selection.

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (GITWEB_*)
  3. Configuration file ($XDG_CONFIG_HOME/gitweb/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0 - Success
  1 - Generic error
  2 - Configuration error (unreadable config file, invalid values)
  3 - Validation error (invalid flags, conflicting arguments)
  4 - No remote is configured for the repository
  5 - Remote address not recognized as a forge URL
  6 - Git could not be started or exited non-zero
  7 - Browser launch failure

Examples:
  gitweb                      # open the sole remote, or prompt among many
  gitweb --remote origin      # open a specific remote without prompting
  gitweb --print              # print the URL instead of opening it
  gitweb --branch             # open the page of the current branch
  gitweb -C ~/src/widget -c   # open the HEAD commit of another checkout
  gitweb docs gopkg.in/yaml.v3  # open a dependency on pkg.go.dev`,
		Args:          validatedArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeContainer(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cleanupContainer()
		},
		RunE: runOpen,
	}

	// Override Cobra's default error handling to use structured errors.
	// Usage text is shown for validation failures only.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return newValidationError("invalid flag usage", err)
	})

	// Add configuration flags
	config.AddFlags(cmd)

	// Pipeline flags apply to the root invocation only
	cmd.Flags().StringP("remote", "r", "", "Open this remote instead of prompting")
	cmd.Flags().BoolP("print", "p", false, "Print the URL instead of opening the browser")
	cmd.Flags().BoolP("branch", "b", false, "Open the page of the current branch")
	cmd.Flags().BoolP("commit", "c", false, "Open the page of the HEAD commit")

	// Add subcommands
	cmd.AddCommand(
		newVersionCommand(),
		newDocsCommand(),
		newConfigCommand(),
	)

	return cmd
}

// validatedArgs wraps a positional-argument rule so violations carry the
// validation exit code and show usage, matching flag errors.
func validatedArgs(rule cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := rule(cmd, args); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
			return newValidationError("invalid arguments", err)
		}
		return nil
	}
}

// initializeContainer sets up the dependency injection container with configuration
func initializeContainer(cmd *cobra.Command) error {
	start := time.Now()

	// First extract config file path from flags if provided
	var configFile string
	if cmd.Flags().Changed("config") {
		configFile, _ = cmd.Flags().GetString("config")
	}

	builder := config.NewBuilder().
		FromFile(configFile). // Use explicit config file or auto-discover
		FromEnv().            // Load from environment
		FromFlags(cmd)        // Load from command flags (highest precedence)

	var err error
	cfg, err = builder.Build()
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}

	containerOptions := []di.Option{di.WithConfig(cfg)}
	if needsReleaseLookup(cmd) {
		containerOptions = append(containerOptions, di.WithReleaseLookup())
	}

	container, err = di.New(containerOptions...)
	if err != nil {
		return newConfigError("failed to initialize dependencies", err)
	}

	if logger := container.Logger(); logger != nil {
		duration := time.Since(start)
		commandName := cmd.Name()
		if cmd.Parent() != nil {
			commandName = cmd.Parent().Name() + " " + cmd.Name()
		}
		logger.Debug("CLI container initialized",
			"command", commandName,
			"duration_ms", duration.Milliseconds(),
			"release_lookup", needsReleaseLookup(cmd),
		)
	}

	return nil
}

// needsReleaseLookup reports whether the command consults the GitHub release
// API. Only the version command does; pipeline runs never read token
// environment variables or open API connections.
func needsReleaseLookup(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd.Name() == "version"
}

// cleanupContainer performs cleanup of container resources
func cleanupContainer() {
	if container != nil {
		if err := container.Close(); err != nil {
			// Log cleanup errors but don't fail the program
			if logger := container.Logger(); logger != nil {
				logger.Warn("Container cleanup errors", "error", err)
			} else {
				// Fallback to stderr if logger unavailable
				fmt.Fprintf(os.Stderr, "gitweb: container cleanup warning: %v\n", err)
			}
		}
	}
}
