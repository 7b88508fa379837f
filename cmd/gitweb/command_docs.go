package main

import (
	"fmt"

	"github.com/goliatone/gitweb/internal/repo"
	"github.com/spf13/cobra"
)

func newDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs [module]",
		Short: "Open the pkg.go.dev page for the enclosing module or a dependency",
		Long: `docs locates the go.mod enclosing the working directory and opens its
documentation on pkg.go.dev. With a module path argument it opens the
documentation of that required dependency, pinned at the version the
module builds against (honoring replace directives that carry a version).`,
		Args: validatedArgs(cobra.MaximumNArgs(1)),
		RunE: runDocs,
	}

	cmd.Flags().BoolP("print", "p", false, "Print the URL instead of opening the browser")

	return cmd
}

func runDocs(cmd *cobra.Command, args []string) error {
	info, err := repo.FindModule(cfg.Git.Dir)
	if err != nil {
		return newGenericError("failed to locate the enclosing Go module", err)
	}

	target := "https://pkg.go.dev/" + info.Module
	if len(args) == 1 && args[0] != info.Module {
		pinned, err := info.Dependency(args[0])
		if err != nil {
			return newGenericError(fmt.Sprintf("failed to resolve dependency %q", args[0]), err)
		}
		target = fmt.Sprintf("https://pkg.go.dev/%s@%s", args[0], pinned)
	}

	return launchOrPrint(cmd, target)
}
