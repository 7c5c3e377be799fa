package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log encodings.
var ValidFormats = []string{"json", "text"}

// Validate checks level and format.
func (c LoggingConfig) Validate() error {
	if !contains(ValidLevels, c.Level) {
		return fmt.Errorf("invalid level: %q (valid: %v)", c.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format: %q (valid: %v)", c.Format, ValidFormats)
	}
	return nil
}

// Output targets.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// OutputConfig selects the stream for the launch and value lines.
type OutputConfig struct {
	Target string `yaml:"target"`
}

// Validate checks the target name.
func (c OutputConfig) Validate() error {
	switch c.Target {
	case OutputStdout, OutputStderr:
		return nil
	default:
		return fmt.Errorf("invalid target: %q (valid: %s, %s)", c.Target, OutputStdout, OutputStderr)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
