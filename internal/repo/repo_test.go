package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a repository with a single commit and returns its
// directory and the commit hash.
func initRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repository, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}

	worktree, err := repository.Worktree()
	if err != nil {
		t.Fatalf("open worktree: %v", err)
	}

	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte("# widget\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := worktree.Add("README.md"); err != nil {
		t.Fatalf("stage file: %v", err)
	}

	hash, err := worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	return dir, hash.String()
}

func TestInspector_HeadBranch(t *testing.T) {
	dir, _ := initRepo(t)

	branch, err := NewInspector(dir).HeadBranch()
	if err != nil {
		t.Fatalf("HeadBranch returned error: %v", err)
	}
	if branch != "master" {
		t.Errorf("branch = %q, want %q", branch, "master")
	}
}

func TestInspector_HeadCommit(t *testing.T) {
	dir, hash := initRepo(t)

	commit, err := NewInspector(dir).HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit returned error: %v", err)
	}
	if commit != hash {
		t.Errorf("commit = %q, want %q", commit, hash)
	}
}

func TestInspector_DetectsRepositoryFromSubdirectory(t *testing.T) {
	dir, hash := initRepo(t)

	nested := filepath.Join(dir, "internal", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("create nested dir: %v", err)
	}

	commit, err := NewInspector(nested).HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit returned error: %v", err)
	}
	if commit != hash {
		t.Errorf("commit = %q, want %q", commit, hash)
	}
}

func TestInspector_DetachedHead(t *testing.T) {
	dir, hash := initRepo(t)

	repository, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	worktree, err := repository.Worktree()
	if err != nil {
		t.Fatalf("open worktree: %v", err)
	}
	head, err := repository.Head()
	if err != nil {
		t.Fatalf("resolve HEAD: %v", err)
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: head.Hash()}); err != nil {
		t.Fatalf("detach HEAD: %v", err)
	}

	inspector := NewInspector(dir)

	_, err = inspector.HeadBranch()
	if !IsDetachedHeadError(err) {
		t.Fatalf("HeadBranch error = %v, want DetachedHeadError", err)
	}
	var detached *DetachedHeadError
	if errors.As(err, &detached) && detached.Hash != hash {
		t.Errorf("DetachedHeadError.Hash = %q, want %q", detached.Hash, hash)
	}

	commit, err := inspector.HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit returned error: %v", err)
	}
	if commit != hash {
		t.Errorf("commit = %q, want %q", commit, hash)
	}
}

func TestInspector_NotARepository(t *testing.T) {
	if _, err := NewInspector(t.TempDir()).HeadBranch(); err == nil {
		t.Fatal("expected error outside a repository")
	}
}
