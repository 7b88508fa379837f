package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = "gitweb"
	configFileName = "config.yaml"
)

// DefaultConfigFile returns the canonical configuration path:
// $XDG_CONFIG_HOME/gitweb/config.yaml, falling back to
// ~/.config/gitweb/config.yaml when XDG_CONFIG_HOME is unset.
func DefaultConfigFile() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName, configFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// DiscoverConfigFile returns the configuration file to load when none is
// named on the command line. GITWEB_CONFIG wins unconditionally, so a stale
// value pointing at a missing file surfaces as a load error rather than
// being silently skipped. Otherwise the canonical path is returned only if
// it exists.
func DiscoverConfigFile() (string, bool) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, true
	}

	path, err := DefaultConfigFile()
	if err != nil {
		return "", false
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}
