package config

import (
	"errors"

	"github.com/spf13/cobra"
)

// Builder orchestrates config assembly from various sources. Sources are
// merged in the order they are added, later sources winning, so the
// expected call order is file, environment, flags.
type Builder interface {
	FromFile(path string) Builder
	FromEnv() Builder
	FromFlags(cmd *cobra.Command) Builder
	Build() (*Config, error)
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return &builder{}
}

type builder struct {
	layers []*Config
	errs   []error
}

// FromFile loads a configuration file layer. An empty path triggers
// discovery; when discovery finds nothing the layer is skipped, while an
// explicitly named file that cannot be loaded is an error.
func (b *builder) FromFile(path string) Builder {
	if path == "" {
		discovered, ok := DiscoverConfigFile()
		if !ok {
			return b
		}
		path = discovered
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

// FromEnv loads the GITWEB_* environment layer.
func (b *builder) FromEnv() Builder {
	cfg, err := NewEnvParser().ParseEnv()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

// FromFlags loads the command-line flag layer.
func (b *builder) FromFlags(cmd *cobra.Command) Builder {
	cfg, err := LoadFromFlags(cmd)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.layers = append(b.layers, cfg)
	return b
}

// Build merges the collected layers, applies defaults, and validates the
// result.
func (b *builder) Build() (*Config, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	cfg := New()
	for _, layer := range b.layers {
		mergeConfig(cfg, layer)
	}

	if err := ApplyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig overlays the set fields of src onto dst.
func mergeConfig(dst, src *Config) {
	if src == nil {
		return
	}

	if src.Git.Binary != "" {
		dst.Git.Binary = src.Git.Binary
	}
	if src.Git.Dir != "" {
		dst.Git.Dir = src.Git.Dir
	}
	if src.Browser.Command != "" {
		dst.Browser.Command = src.Browser.Command
	}
	if src.Remote.Preferred != "" {
		dst.Remote.Preferred = src.Remote.Preferred
	}
	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		dst.Logging.Format = src.Logging.Format
	}
	if src.loggingVerboseSet() {
		dst.setLoggingVerbose(src.Logging.Verbose)
	}
}
