package config

// setLoggingVerbose records an explicit verbose value originating from a
// configuration source, so merging can tell "false" from "never set".
func (c *Config) setLoggingVerbose(value bool) {
	if c == nil {
		return
	}
	c.Logging.Verbose = value
	c.setFlags.loggingVerbose = true
}

func (c *Config) loggingVerboseSet() bool {
	if c == nil {
		return false
	}
	return c.setFlags.loggingVerbose
}
