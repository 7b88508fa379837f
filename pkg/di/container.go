package di

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/goliatone/gitweb/internal/browser"
	"github.com/goliatone/gitweb/internal/executor"
	"github.com/goliatone/gitweb/internal/release"
	"github.com/goliatone/gitweb/internal/remote"
	"github.com/goliatone/gitweb/internal/repo"
	"github.com/goliatone/gitweb/internal/selector"
	"github.com/goliatone/gitweb/pkg/config"
)

// Logger defines the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Container exposes resolved dependencies for the CLI orchestration layer.
// All methods return interfaces to prevent leaking concrete implementations.
type Container interface {
	// Core service accessors
	Runner() executor.CommandRunner
	Remotes() remote.Service
	Selector() selector.Selector
	Browser() browser.Launcher
	Repo() repo.Inspector
	Releases() release.Checker

	// Configuration and infrastructure
	Config() *config.Config
	Logger() Logger
	HTTPClient() *http.Client

	// Resource management
	Close() error
}

// Option customises container construction using the functional options
// pattern. Options allow overriding default dependencies for testing.
type Option func(*builder) error

// New creates a container with default wiring and applies the provided
// options. It returns an error if any option fails.
func New(opts ...Option) (Container, error) {
	b := &builder{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("di: failed to apply option: %w", err)
		}
	}

	return b.build()
}

// builder holds the dependencies being assembled into a container.
type builder struct {
	// Configuration
	cfg *config.Config

	// Build options
	releaseLookup bool

	// Infrastructure dependencies
	logger     Logger
	httpClient *http.Client
	stdin      io.Reader
	stdout     io.Writer

	// Core service dependencies
	runner   executor.CommandRunner
	remotes  remote.Service
	selector selector.Selector
	browser  browser.Launcher
	repo     repo.Inspector
	releases release.Checker
}

// container implements the Container interface with concrete dependencies.
type container struct {
	cfg        *config.Config
	logger     Logger
	httpClient *http.Client
	runner     executor.CommandRunner
	remotes    remote.Service
	selector   selector.Selector
	browser    browser.Launcher
	repo       repo.Inspector
	releases   release.Checker
}

// Core service accessors
func (c *container) Runner() executor.CommandRunner { return c.runner }
func (c *container) Remotes() remote.Service        { return c.remotes }
func (c *container) Selector() selector.Selector    { return c.selector }
func (c *container) Browser() browser.Launcher      { return c.browser }
func (c *container) Repo() repo.Inspector           { return c.repo }
func (c *container) Releases() release.Checker      { return c.releases }

// Configuration and infrastructure accessors
func (c *container) Config() *config.Config   { return c.cfg }
func (c *container) Logger() Logger           { return c.logger }
func (c *container) HTTPClient() *http.Client { return c.httpClient }

// Close performs cleanup of container resources. It probes each service
// for a Close method and collects any errors.
func (c *container) Close() error {
	var errs []error

	if closer, ok := c.remotes.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("remote service close: %w", err))
		}
	}

	if closer, ok := c.runner.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("runner close: %w", err))
		}
	}

	if closer, ok := c.releases.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release checker close: %w", err))
		}
	}

	if c.httpClient != nil && c.httpClient.Transport != nil {
		if closer, ok := c.httpClient.Transport.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, fmt.Errorf("http client transport close: %w", err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}

// build assembles the container with all dependencies resolved.
// Configuration is resolved first, then infrastructure, then the services
// in dependency order.
func (b *builder) build() (Container, error) {
	if b.cfg == nil {
		b.cfg = provideConfigWithDefaults()
	}

	// Logger depends on config for level/format settings
	if b.logger == nil {
		b.logger = provideLoggerWithConfig(b.cfg)
	}

	if b.httpClient == nil {
		b.httpClient = provideHTTPClient()
	}

	if b.stdin == nil {
		b.stdin = os.Stdin
	}
	if b.stdout == nil {
		b.stdout = os.Stdout
	}

	if b.runner == nil {
		b.runner = executor.NewDefaultCommandRunner()
	}

	if b.remotes == nil {
		b.remotes = remote.NewService(b.runner, b.cfg.Git.Binary, b.cfg.Git.Dir)
	}

	if b.selector == nil {
		b.selector = selector.New(b.stdin, b.stdout)
	}

	if b.browser == nil {
		b.browser = browser.New(b.runner, b.cfg.Browser.Command)
	}

	if b.repo == nil {
		b.repo = repo.NewInspector(b.cfg.Git.Dir)
	}

	// The release checker only loads credentials when a command actually
	// performs release lookups, so plain runs never touch token variables.
	if b.releases == nil {
		b.releases = provideReleases(b.httpClient, b.releaseLookup)
	}

	if b.cfg == nil {
		return nil, fmt.Errorf("di: config is required")
	}
	if b.logger == nil {
		return nil, fmt.Errorf("di: logger is required")
	}
	if b.runner == nil {
		return nil, fmt.Errorf("di: command runner is required")
	}
	if b.remotes == nil {
		return nil, fmt.Errorf("di: remote service is required")
	}
	if b.selector == nil {
		return nil, fmt.Errorf("di: selector is required")
	}
	if b.browser == nil {
		return nil, fmt.Errorf("di: browser launcher is required")
	}
	if b.repo == nil {
		return nil, fmt.Errorf("di: repository inspector is required")
	}
	if b.releases == nil {
		return nil, fmt.Errorf("di: release checker is required")
	}

	return &container{
		cfg:        b.cfg,
		logger:     b.logger,
		httpClient: b.httpClient,
		runner:     b.runner,
		remotes:    b.remotes,
		selector:   b.selector,
		browser:    b.browser,
		repo:       b.repo,
		releases:   b.releases,
	}, nil
}

// Configuration options

// WithConfig injects an explicit configuration object into the container.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		b.cfg = cfg
		return nil
	}
}

// WithLogger injects a custom logger into the container.
func WithLogger(logger Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// WithHTTPClient injects a custom HTTP client into the container.
func WithHTTPClient(client *http.Client) Option {
	return func(b *builder) error {
		if client == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		b.httpClient = client
		return nil
	}
}

// WithStdio redirects the selector's prompt streams. Useful for tests and
// for callers that capture output.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(b *builder) error {
		if in == nil || out == nil {
			return fmt.Errorf("stdio streams cannot be nil")
		}
		b.stdin = in
		b.stdout = out
		return nil
	}
}

// WithReleaseLookup marks the container as serving a command that queries
// published releases, enabling credential loading for the GitHub client.
func WithReleaseLookup() Option {
	return func(b *builder) error {
		b.releaseLookup = true
		return nil
	}
}

// Core service override options for testing

// WithRunner injects a custom command runner implementation.
func WithRunner(runner executor.CommandRunner) Option {
	return func(b *builder) error {
		if runner == nil {
			return fmt.Errorf("command runner cannot be nil")
		}
		b.runner = runner
		return nil
	}
}

// WithRemotes injects a custom remote service implementation.
func WithRemotes(svc remote.Service) Option {
	return func(b *builder) error {
		if svc == nil {
			return fmt.Errorf("remote service cannot be nil")
		}
		b.remotes = svc
		return nil
	}
}

// WithSelector injects a custom selector implementation.
func WithSelector(sel selector.Selector) Option {
	return func(b *builder) error {
		if sel == nil {
			return fmt.Errorf("selector cannot be nil")
		}
		b.selector = sel
		return nil
	}
}

// WithBrowser injects a custom browser launcher implementation.
func WithBrowser(launcher browser.Launcher) Option {
	return func(b *builder) error {
		if launcher == nil {
			return fmt.Errorf("browser launcher cannot be nil")
		}
		b.browser = launcher
		return nil
	}
}

// WithRepo injects a custom repository inspector implementation.
func WithRepo(inspector repo.Inspector) Option {
	return func(b *builder) error {
		if inspector == nil {
			return fmt.Errorf("repository inspector cannot be nil")
		}
		b.repo = inspector
		return nil
	}
}

// WithReleases injects a custom release checker implementation.
func WithReleases(checker release.Checker) Option {
	return func(b *builder) error {
		if checker == nil {
			return fmt.Errorf("release checker cannot be nil")
		}
		b.releases = checker
		return nil
	}
}
