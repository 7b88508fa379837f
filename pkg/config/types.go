package config

// Config represents the complete configuration for gitweb.
// It aggregates git invocation, browser, remote selection, and logging
// settings. All fields have working zero values; an empty Config behaves
// exactly like running gitweb with no configuration at all.
type Config struct {
	// Git contains settings for invoking the git binary
	Git GitConfig `json:"git" yaml:"git"`

	// Browser contains settings for opening URLs
	Browser BrowserConfig `json:"browser" yaml:"browser"`

	// Remote contains remote selection settings
	Remote RemoteConfig `json:"remote" yaml:"remote"`

	// Logging contains logging level and output configuration
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	setFlags boolFlags `json:"-" yaml:"-"`
}

type boolFlags struct {
	loggingVerbose bool
}

// GitConfig controls how the git binary is invoked.
type GitConfig struct {
	// Binary is the git executable to run.
	// Default: "git", resolved on PATH.
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty"`

	// Dir is the directory git commands run in.
	// Default: the process working directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// BrowserConfig controls how chosen URLs are opened.
type BrowserConfig struct {
	// Command is the browser command, split on whitespace before the URL
	// is appended. When empty the BROWSER environment variable and then
	// the platform opener are used.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

// RemoteConfig controls remote selection.
type RemoteConfig struct {
	// Preferred names a remote to open directly, skipping the prompt.
	Preferred string `json:"preferred,omitempty" yaml:"preferred,omitempty"`
}

// LoggingConfig manages logging level and output format.
type LoggingConfig struct {
	// Level controls the logging verbosity level.
	// Valid values: debug, info, warn, error
	// Default: warn, so plain runs print nothing besides their output
	Level string `json:"level" yaml:"level"`

	// Format controls the log output format.
	// Valid values: text, json
	// Default: text
	Format string `json:"format" yaml:"format"`

	// Verbose enables verbose logging output.
	// Equivalent to setting Level to "debug"
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Environment variable mapping constants for configuration parsing
const (
	// Git environment variables
	EnvGitBinary = "GITWEB_GIT_BINARY"
	EnvGitDir    = "GITWEB_GIT_DIR"

	// Browser environment variables
	EnvBrowser = "GITWEB_BROWSER"

	// Remote selection environment variables
	EnvRemote = "GITWEB_REMOTE"

	// Logging environment variables
	EnvLogLevel  = "GITWEB_LOG_LEVEL"
	EnvLogFormat = "GITWEB_LOG_FORMAT"
	EnvVerbose   = "GITWEB_VERBOSE"

	// EnvConfigFile overrides configuration file discovery
	EnvConfigFile = "GITWEB_CONFIG"
)

// New returns a Config populated with safe zero values.
func New() *Config {
	return &Config{}
}
