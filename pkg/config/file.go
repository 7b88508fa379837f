package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileMode = 0o644

// LoadFromFile reads YAML configuration from the provided path.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Op: "read", Err: err}
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &FileError{Path: path, Op: "parse", Err: err}
	}

	return cfg, nil
}

// SaveToFile writes the configuration as YAML to the provided path,
// creating parent directories as needed.
func SaveToFile(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config: cannot save nil configuration")
	}

	data, err := Render(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileError{Path: path, Op: "create directory for", Err: err}
		}
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return &FileError{Path: path, Op: "write", Err: err}
	}

	return nil
}

// Render serialises the configuration as YAML.
func Render(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal configuration: %w", err)
	}
	return data, nil
}
