package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// LoadDotEnv exports the variables in path into the process environment.
// A missing file is not an error. Variables already set are left alone.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, "failed to load %s", path)
}
