package repo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Inspector reports facts about the repository enclosing a directory.
type Inspector interface {
	// HeadBranch returns the short name of the branch HEAD points at.
	HeadBranch() (string, error)

	// HeadCommit returns the full hash of the commit HEAD points at.
	HeadCommit() (string, error)
}

// inspector opens the repository lazily on each call so a gitweb process
// started outside a repository can still run commands that never need one.
type inspector struct {
	dir string
}

// NewInspector creates an Inspector rooted at dir. An empty dir means the
// process working directory. The enclosing repository is detected by
// walking up from dir, the same way git itself does.
func NewInspector(dir string) Inspector {
	if dir == "" {
		dir = "."
	}
	return &inspector{dir: dir}
}

func (i *inspector) open() (*git.Repository, error) {
	repository, err := git.PlainOpenWithOptions(i.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", i.dir, err)
	}
	return repository, nil
}

func (i *inspector) HeadBranch() (string, error) {
	repository, err := i.open()
	if err != nil {
		return "", err
	}

	ref, err := repository.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !ref.Name().IsBranch() {
		return "", &DetachedHeadError{Hash: ref.Hash().String()}
	}
	return ref.Name().Short(), nil
}

func (i *inspector) HeadCommit() (string, error) {
	repository, err := i.open()
	if err != nil {
		return "", err
	}

	ref, err := repository.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// DetachedHeadError indicates HEAD points at a commit rather than a branch,
// so there is no branch name to build a URL from.
type DetachedHeadError struct {
	Hash string
}

func (e *DetachedHeadError) Error() string {
	return fmt.Sprintf("repo: HEAD is detached at %s, not on a branch", e.Hash)
}

func IsDetachedHeadError(err error) bool {
	var target *DetachedHeadError
	return errors.As(err, &target)
}
