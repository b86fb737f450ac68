package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/takaishi/minigrep/errs"
)

// EnvFile names a dotenv file to load before resolving arguments
const EnvFile = "MINIGREP_ENV_FILE"

// LoadEnvFile loads the dotenv file named by MINIGREP_ENV_FILE, if set.
// Variables already present in the process environment are kept.
func LoadEnvFile(env LookupEnv) error {
	if env == nil {
		env = os.LookupEnv
	}

	path, ok := env(EnvFile)
	if !ok || path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errs.Usagef(err, "failed to load env file %s", path)
	}
	return nil
}
