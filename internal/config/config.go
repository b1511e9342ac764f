// Package config resolves CLI defaults from the environment and an optional .env file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvOutDir    = "XLSPEC_OUT_DIR"
	EnvMessage   = "XLSPEC_MESSAGE"
	EnvExt       = "XLSPEC_EXT"
	EnvLogFormat = "XLSPEC_LOG_FORMAT"
)

// Config holds defaults for flags the user did not set.
type Config struct {
	OutDir    string
	Message   string
	Ext       string
	LogFormat string
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then resolves each key against
// fallback.
func Load(envFile string, fallback Config) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		OutDir:    lookup(EnvOutDir, fallback.OutDir),
		Message:   lookup(EnvMessage, fallback.Message),
		Ext:       lookup(EnvExt, fallback.Ext),
		LogFormat: lookup(EnvLogFormat, fallback.LogFormat),
	}, nil
}

func lookup(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
