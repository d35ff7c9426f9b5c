// Package config resolves rolo's on-disk locations and user settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvRoloHome overrides the data directory.
	EnvRoloHome = "ROLO_HOME"
	// EnvRoloDB overrides the full path of the SQLite database file.
	EnvRoloDB = "ROLO_DB"
)

// DataDir returns the directory used to store rolo data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvRoloHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".rolo"), nil
}

// EnsureDataDir returns DataDir after creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvRoloDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "rolo.db"), nil
}

// LogPath returns the log file location. The interactive front ends own the
// terminal, so logs never go to stderr while they run.
func LogPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "rolo.log"), nil
}

// SettingsPath returns the default location of the optional settings file.
func SettingsPath() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}
