package main

import (
	"fmt"

	"github.com/goliatone/gitweb/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print gitweb version information",
		Args:  validatedArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := version.Print(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !check {
				return nil
			}
			return runReleaseCheck(cmd)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")

	return cmd
}

// runReleaseCheck compares the running build against the latest published
// release. The check is advisory: lookup failures are reported as a warning
// and do not fail the command.
func runReleaseCheck(cmd *cobra.Command) error {
	result, err := container.Releases().Check(cmd.Context(), version.Version)
	if err != nil {
		container.Logger().Warn("Release lookup failed", "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Could not determine the latest release.")
		return nil
	}

	if result.Outdated {
		fmt.Fprintf(cmd.OutOrStdout(), "A newer release is available: %s (running %s)\n", result.Latest, result.Current)
		if result.URL != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", result.URL)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "gitweb is up to date (%s)\n", result.Latest)
	return nil
}
