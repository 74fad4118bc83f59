package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that provide flag defaults.
const (
	EnvDB       = "TERM2048_DB"
	EnvConfig   = "TERM2048_CONFIG"
	EnvLogLevel = "TERM2048_LOG_LEVEL"
)

// LoadEnv loads variables from the given .env files (./.env when none are
// given) without overriding what the process environment already holds.
// Missing files are not an error.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Getenv returns the value of key, or def when it is unset or empty.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
