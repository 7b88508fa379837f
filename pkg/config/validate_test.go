package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		Git:     GitConfig{Binary: "git"},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Validate returned error for valid config: %v", err)
	}
}

func TestValidate_NilConfig(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "missing git binary",
			mutate:    func(c *Config) { c.Git.Binary = "" },
			wantField: "git.binary",
		},
		{
			name:      "nonexistent git dir",
			mutate:    func(c *Config) { c.Git.Dir = "/definitely/not/a/real/path" },
			wantField: "git.dir",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "loud" },
			wantField: "logging.level",
		},
		{
			name:      "bad log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantField: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not name field %s", err, tt.wantField)
			}
		})
	}
}

func TestValidate_GitDirIsFile(t *testing.T) {
	cfg := validConfig()
	cfg.Git.Dir = writeTempFile(t)

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for file path used as directory")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("error = %q, want mention of non-directory path", err)
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "loud", Format: "xml"}}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) != 3 {
		t.Errorf("error count = %d, want 3:\n%v", len(verrs), err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := New()
	if err := ApplyDefaults(cfg); err != nil {
		t.Fatalf("ApplyDefaults returned error: %v", err)
	}

	if cfg.Git.Binary != "git" {
		t.Errorf("Git.Binary = %q, want %q", cfg.Git.Binary, "git")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{
		Git:     GitConfig{Binary: "/opt/git/bin/git"},
		Logging: LoggingConfig{Level: "debug", Format: "json"},
	}
	if err := ApplyDefaults(cfg); err != nil {
		t.Fatalf("ApplyDefaults returned error: %v", err)
	}

	if cfg.Git.Binary != "/opt/git/bin/git" {
		t.Errorf("Git.Binary = %q, explicit value was overwritten", cfg.Git.Binary)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v, explicit values were overwritten", cfg.Logging)
	}
}
