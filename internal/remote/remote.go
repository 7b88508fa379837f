package remote

import (
	"context"
	"fmt"

	"github.com/goliatone/gitweb/internal/executor"
)

// Remote pairs a remote name with its configured address.
type Remote struct {
	Name    string
	Address string
}

// Service lists and resolves the remotes configured for a repository.
type Service interface {
	// Names returns the configured remote names in the order git reports them.
	Names(ctx context.Context) ([]string, error)

	// Address returns the configured address for a single remote, taking
	// the first line of output when git reports more than one.
	Address(ctx context.Context, name string) (string, error)

	// Remotes resolves every configured remote, one at a time, in listing order.
	Remotes(ctx context.Context) ([]Remote, error)
}

// service shells out to git through the shared command runner.
type service struct {
	runner executor.CommandRunner
	binary string
	dir    string
}

// NewService creates a Service that invokes the given git binary in dir.
// An empty dir means the process working directory.
func NewService(runner executor.CommandRunner, binary, dir string) Service {
	if binary == "" {
		binary = "git"
	}
	return &service{runner: runner, binary: binary, dir: dir}
}

func (s *service) Names(ctx context.Context) ([]string, error) {
	return s.runner.Run(ctx, s.dir, s.binary, "remote")
}

func (s *service) Address(ctx context.Context, name string) (string, error) {
	lines, err := s.runner.Run(ctx, s.dir, s.binary, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("remote: no address configured for %q", name)
	}
	return lines[0], nil
}

func (s *service) Remotes(ctx context.Context) ([]Remote, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}

	remotes := make([]Remote, 0, len(names))
	for _, name := range names {
		address, err := s.Address(ctx, name)
		if err != nil {
			return nil, err
		}
		remotes = append(remotes, Remote{Name: name, Address: address})
	}
	return remotes, nil
}
