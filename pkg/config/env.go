package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvParser provides functionality to parse configuration from environment
// variables. It handles validation and error reporting for all supported
// variables in the GITWEB_* namespace.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates a new environment variable parser.
func NewEnvParser() *EnvParser {
	return &EnvParser{
		getEnv: os.Getenv,
	}
}

// NewEnvParserWithGetter creates a parser with a custom getter. This is
// primarily used for testing with mock environment variables.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{
		getEnv: getter,
	}
}

// ParseEnv parses all GITWEB environment variables and returns a Config
// holding only the values that were set. It returns an error if any
// variable contains an invalid value.
func (p *EnvParser) ParseEnv() (*Config, error) {
	var errs []string
	cfg := New()

	if binary := p.getEnv(EnvGitBinary); binary != "" {
		cfg.Git.Binary = binary
	}
	if dir := p.getEnv(EnvGitDir); dir != "" {
		cfg.Git.Dir = dir
	}
	if command := p.getEnv(EnvBrowser); command != "" {
		cfg.Browser.Command = command
	}
	if remote := p.getEnv(EnvRemote); remote != "" {
		cfg.Remote.Preferred = remote
	}

	if level := p.getEnv(EnvLogLevel); level != "" {
		if !isValidLogLevel(level) {
			errs = append(errs, fmt.Sprintf("invalid %s: must be one of [debug, info, warn, error], got %q", EnvLogLevel, level))
		} else {
			cfg.Logging.Level = level
		}
	}
	if format := p.getEnv(EnvLogFormat); format != "" {
		if !isValidLogFormat(format) {
			errs = append(errs, fmt.Sprintf("invalid %s: must be one of [text, json], got %q", EnvLogFormat, format))
		} else {
			cfg.Logging.Format = format
		}
	}
	if verboseStr := p.getEnv(EnvVerbose); verboseStr != "" {
		verbose, err := parseBool(verboseStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvVerbose, err))
		} else {
			cfg.setLoggingVerbose(verbose)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("environment variable parsing errors: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

func parseBool(value string) (bool, error) {
	lower := strings.ToLower(strings.TrimSpace(value))

	switch lower {
	case "true", "1", "yes", "on", "enabled":
		return true, nil
	case "false", "0", "no", "off", "disabled", "":
		return false, nil
	default:
		return false, fmt.Errorf("must be one of [true, false, 1, 0, yes, no, on, off, enabled, disabled], got %q", value)
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func isValidLogFormat(format string) bool {
	switch format {
	case "text", "json":
		return true
	}
	return false
}
