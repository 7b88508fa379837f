package config

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("config validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate inspects the configuration for missing or invalid fields.
// It should run after ApplyDefaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	var errs ValidationErrors

	if cfg.Git.Binary == "" {
		errs = append(errs, ValidationError{
			Field:   "git.binary",
			Value:   cfg.Git.Binary,
			Message: "git binary is required",
		})
	}

	if cfg.Git.Dir != "" {
		info, err := os.Stat(cfg.Git.Dir)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{
				Field:   "git.dir",
				Value:   cfg.Git.Dir,
				Message: "directory does not exist",
			})
		case !info.IsDir():
			errs = append(errs, ValidationError{
				Field:   "git.dir",
				Value:   cfg.Git.Dir,
				Message: "path is not a directory",
			})
		}
	}

	if !isValidLogLevel(cfg.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   cfg.Logging.Level,
			Message: "must be one of: debug, info, warn, error",
		})
	}
	if !isValidLogFormat(cfg.Logging.Format) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   cfg.Logging.Format,
			Message: "must be one of: text, json",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyDefaults fills unset fields with their defaults. It should be
// called after all sources are merged but before validation.
func ApplyDefaults(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	if cfg.Git.Binary == "" {
		cfg.Git.Binary = "git"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return nil
}
