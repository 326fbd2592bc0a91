// Package config resolves the browser configuration from flags and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the startup configuration.
type Config struct {
	// Browser
	StartPath  string
	ShowHidden bool

	// Editor command line, e.g. "code --wait". Empty means autodetect.
	EditorCommand string

	// Logging
	LogFile   string
	LogLevel  string
	LogFormat string
}

// Resolve fills unset fields from FBROWSE_* environment variables and
// defaults, and makes StartPath absolute. Flags always win over the
// environment.
func Resolve(cfg Config) (*Config, error) {
	resolved := cfg

	if resolved.StartPath == "" {
		resolved.StartPath = "."
	}
	abs, err := filepath.Abs(resolved.StartPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", resolved.StartPath, err)
	}
	resolved.StartPath = filepath.Clean(abs)

	if !resolved.ShowHidden {
		resolved.ShowHidden = envBool("FBROWSE_SHOW_HIDDEN", false)
	}
	if resolved.EditorCommand == "" {
		resolved.EditorCommand = envOr("FBROWSE_EDITOR", "")
	}
	if resolved.LogFile == "" {
		resolved.LogFile = envOr("FBROWSE_LOG_FILE", "")
	}
	if resolved.LogLevel == "" {
		resolved.LogLevel = envOr("FBROWSE_LOG_LEVEL", "info")
	}
	if resolved.LogFormat == "" {
		resolved.LogFormat = envOr("FBROWSE_LOG_FORMAT", "json")
	}

	return &resolved, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
