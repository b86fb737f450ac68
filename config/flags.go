package config

import (
	"errors"
	"os"

	"github.com/takaishi/minigrep/errs"
)

const (
	// EnvCaseInsensitive switches to case-insensitive search when set to any value
	EnvCaseInsensitive = "CASE_INSENSITIVE"

	helpFlag = "-h"
	// The help text advertises -c, but only the bare "c" is accepted.
	caseSensitiveArg = "c"
)

// ErrHelp is returned by Resolve when help was requested
var ErrHelp = errors.New("help requested")

// LookupEnv looks up an environment variable, like os.LookupEnv
type LookupEnv func(key string) (string, bool)

// Config holds the resolved search parameters
type Config struct {
	query         string
	filePath      string
	caseSensitive bool
}

// Query returns the text to search for
func (c *Config) Query() string { return c.query }

// FilePath returns the path of the file to search
func (c *Config) FilePath() string { return c.filePath }

// CaseSensitive reports whether matching is exact
func (c *Config) CaseSensitive() bool { return c.caseSensitive }

// Resolve builds a Config from the full argument vector, program name included.
// It returns ErrHelp when "-h" is the only argument, and a usage error when
// the query or file path is missing.
func Resolve(args []string, env LookupEnv) (*Config, error) {
	if env == nil {
		env = os.LookupEnv
	}

	if len(args) < 3 {
		if len(args) == 2 && args[1] == helpFlag {
			return nil, ErrHelp
		}
		return nil, errs.Usage("not enough arguments.\n" + Usage)
	}

	cfg := &Config{
		query:    args[1],
		filePath: args[2],
	}

	// Positional "c" wins over the environment
	if len(args) > 3 && args[3] == caseSensitiveArg {
		cfg.caseSensitive = true
	} else {
		_, insensitive := env(EnvCaseInsensitive)
		cfg.caseSensitive = !insensitive
	}

	return cfg, nil
}
