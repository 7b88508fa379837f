package main

import (
	"errors"
	"fmt"

	"github.com/goliatone/gitweb/internal/selector"
	"github.com/goliatone/gitweb/pkg/giturl"
	"github.com/spf13/cobra"
)

// runOpen drives the pipeline behind the bare gitweb invocation: list the
// remotes, derive their web URLs, let the user pick one, open it.
func runOpen(cmd *cobra.Command, args []string) error {
	logger := container.Logger()

	branchPage, _ := cmd.Flags().GetBool("branch")
	commitPage, _ := cmd.Flags().GetBool("commit")
	if branchPage && commitPage {
		return newValidationError("--branch and --commit are mutually exclusive", nil)
	}

	logger.Debug("Resolving remotes", "dir", cfg.Git.Dir, "remote", cfg.Remote.Preferred)

	candidates, err := collectCandidates(cmd)
	if err != nil {
		return err
	}

	options := make([]string, len(candidates))
	for i, candidate := range candidates {
		options[i] = candidate.String()
	}

	index, err := container.Selector().Select(options)
	if err != nil {
		switch {
		case errors.Is(err, selector.ErrNoRemotes):
			return newNoRemotesError()
		case errors.Is(err, selector.ErrInputClosed):
			return newGenericError("selection cancelled", err)
		default:
			return newGenericError("failed to read selection", err)
		}
	}

	target := candidates[index].String()
	switch {
	case branchPage:
		branch, err := container.Repo().HeadBranch()
		if err != nil {
			return newGitError("failed to resolve the current branch", err)
		}
		target = candidates[index].BranchURL(branch)
	case commitPage:
		hash, err := container.Repo().HeadCommit()
		if err != nil {
			return newGitError("failed to resolve the HEAD commit", err)
		}
		target = candidates[index].CommitURL(hash)
	}

	return launchOrPrint(cmd, target)
}

// collectCandidates resolves the remotes to offer. With --remote (or the
// configured preferred remote) the listing step is skipped and only that
// remote is resolved; otherwise every configured remote is a candidate,
// in the order git lists them. Any address outside the accepted grammar
// aborts the run.
func collectCandidates(cmd *cobra.Command) ([]giturl.WebURL, error) {
	ctx := cmd.Context()
	remotes := container.Remotes()

	if preferred := cfg.Remote.Preferred; preferred != "" {
		address, err := remotes.Address(ctx, preferred)
		if err != nil {
			return nil, newGitError(fmt.Sprintf("failed to resolve remote %q", preferred), err)
		}
		derived, err := giturl.Derive(address)
		if err != nil {
			return nil, newAddressError(fmt.Sprintf("remote %q has an unrecognized address", preferred), err)
		}
		return []giturl.WebURL{derived}, nil
	}

	resolved, err := remotes.Remotes(ctx)
	if err != nil {
		return nil, newGitError("failed to list remotes", err)
	}

	candidates := make([]giturl.WebURL, 0, len(resolved))
	for _, rem := range resolved {
		derived, err := giturl.Derive(rem.Address)
		if err != nil {
			return nil, newAddressError(fmt.Sprintf("remote %q has an unrecognized address", rem.Name), err)
		}
		candidates = append(candidates, derived)
	}
	return candidates, nil
}

// launchOrPrint hands the chosen URL to the browser launcher, or writes it
// to stdout when --print is set.
func launchOrPrint(cmd *cobra.Command, url string) error {
	printOnly, _ := cmd.Flags().GetBool("print")
	if printOnly {
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	}

	container.Logger().Debug("Opening URL", "url", url)
	if err := container.Browser().Open(cmd.Context(), url); err != nil {
		return newLaunchError("failed to open the browser", err)
	}
	return nil
}
