package main

import (
	"fmt"
	"os"

	"github.com/goliatone/gitweb/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gitweb configuration file",
		Args:  validatedArgs(cobra.NoArgs),
	}

	cmd.AddCommand(
		newConfigInitCommand(),
		newConfigShowCommand(),
	)

	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  validatedArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := configTargetPath(cmd)
	if err != nil {
		return newConfigError("failed to determine the configuration path", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return newConfigError(fmt.Sprintf("%s already exists, pass --force to overwrite", path), nil)
	}

	if err := config.SaveToFile(cfg, path); err != nil {
		return newConfigError("failed to write configuration", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// configTargetPath returns the explicit --config path when given, the
// discovery path otherwise.
func configTargetPath(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("config") {
		return cmd.Flags().GetString("config")
	}
	return config.DefaultConfigFile()
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective merged configuration as YAML",
		Args:  validatedArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.Render(cfg)
			if err != nil {
				return newConfigError("failed to render configuration", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}
}
