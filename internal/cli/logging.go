package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// LogLevelEnv overrides the log level chosen by flags
const LogLevelEnv = "RESBIND_LOG_LEVEL"

var logger hclog.Logger = hclog.NewNullLogger()

// newLogger builds the CLI logger. The level is Warn, or Debug with
// --verbose, unless RESBIND_LOG_LEVEL names a valid level.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	if env := os.Getenv(LogLevelEnv); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "resbind",
		Level:  level,
		Output: os.Stderr,
	})
}
