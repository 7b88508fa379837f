package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagConfig represents flag parsing configuration and results.
type FlagConfig struct {
	// Command-line flag values
	ConfigFile string
	GitBinary  string
	Dir        string
	Browser    string
	Remote     string

	// Logging flags
	Verbose   bool
	LogLevel  string
	LogFormat string

	verboseSet   bool
	logLevelSet  bool
	logFormatSet bool
}

// AddFlags adds all configuration flags to the provided cobra command.
// Persistent flags are inherited by subcommands.
func AddFlags(cmd *cobra.Command) *FlagConfig {
	fc := &FlagConfig{}

	cmd.PersistentFlags().StringVar(&fc.ConfigFile, "config", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/gitweb/config.yaml)")
	cmd.PersistentFlags().StringVar(&fc.GitBinary, "git-binary", "",
		"Git executable to invoke (default: git on PATH)")
	cmd.PersistentFlags().StringVarP(&fc.Dir, "dir", "C", "",
		"Run as if started in this directory")
	cmd.PersistentFlags().StringVar(&fc.Browser, "browser", "",
		"Browser command used to open URLs (default: $BROWSER, then the platform opener)")

	// Logging control flags
	cmd.PersistentFlags().BoolVarP(&fc.Verbose, "verbose", "v", false,
		"Verbose logging output (equivalent to --log-level=debug)")
	cmd.PersistentFlags().StringVar(&fc.LogLevel, "log-level", "",
		"Logging level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&fc.LogFormat, "log-format", "",
		"Log output format (text, json)")

	return fc
}

// ValidateFlags validates flag combinations and values.
func (fc *FlagConfig) ValidateFlags() error {
	var errs []string

	if fc.verboseSet && fc.logLevelSet {
		errs = append(errs, "verbose and log-level are mutually exclusive")
	}
	if fc.logLevelSet && !isValidLogLevel(fc.LogLevel) {
		errs = append(errs, "log-level must be one of: debug, info, warn, error")
	}
	if fc.logFormatSet && !isValidLogFormat(fc.LogFormat) {
		errs = append(errs, "log-format must be one of: text, json")
	}

	if len(errs) > 0 {
		return fmt.Errorf("flag validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// ToConfig converts flag configuration to a Config struct. It emits only
// the values explicitly set via flags; callers should merge this result
// with other configuration sources to honour precedence rules.
func (fc *FlagConfig) ToConfig() (*Config, error) {
	cfg := New()

	if fc.GitBinary != "" {
		cfg.Git.Binary = fc.GitBinary
	}
	if fc.Dir != "" {
		cfg.Git.Dir = fc.Dir
	}
	if fc.Browser != "" {
		cfg.Browser.Command = fc.Browser
	}
	if fc.Remote != "" {
		cfg.Remote.Preferred = fc.Remote
	}

	if fc.verboseSet {
		cfg.setLoggingVerbose(fc.Verbose)
		if fc.Verbose {
			cfg.Logging.Level = "debug"
		}
	}
	if fc.logLevelSet && fc.LogLevel != "" {
		cfg.Logging.Level = fc.LogLevel
	}
	if fc.logFormatSet && fc.LogFormat != "" {
		cfg.Logging.Format = fc.LogFormat
	}

	return cfg, nil
}

// LoadFromFlags loads configuration from command-line flags using cobra.
// This is the main entry point for flag-based configuration.
func LoadFromFlags(cmd *cobra.Command) (*Config, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command cannot be nil")
	}

	// cmd.Flags() returns both local and inherited flags
	fc := extractFlagConfig(cmd.Flags())

	if err := fc.ValidateFlags(); err != nil {
		return nil, err
	}

	return fc.ToConfig()
}

// extractFlagConfig extracts explicitly set flag values from a flag set.
// Flags a command does not define simply read as unchanged.
func extractFlagConfig(flags *pflag.FlagSet) *FlagConfig {
	fc := &FlagConfig{}

	if flags.Changed("config") {
		fc.ConfigFile, _ = flags.GetString("config")
	}
	if flags.Changed("git-binary") {
		fc.GitBinary, _ = flags.GetString("git-binary")
	}
	if flags.Changed("dir") {
		fc.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("browser") {
		fc.Browser, _ = flags.GetString("browser")
	}
	if flags.Changed("remote") {
		fc.Remote, _ = flags.GetString("remote")
	}
	if flags.Changed("verbose") {
		fc.Verbose, _ = flags.GetBool("verbose")
		fc.verboseSet = true
	}
	if flags.Changed("log-level") {
		fc.LogLevel, _ = flags.GetString("log-level")
		fc.logLevelSet = true
	}
	if flags.Changed("log-format") {
		fc.LogFormat, _ = flags.GetString("log-format")
		fc.logFormatSet = true
	}

	return fc
}
