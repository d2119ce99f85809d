package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads KEY=VALUE files into the process environment before
// FromEnv runs. Missing files are skipped and variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// EnvFile is AINADEUL_ENV_FILE, or .env in the working directory.
func EnvFile() string {
	return stringEnv("AINADEUL_ENV_FILE", ".env")
}
