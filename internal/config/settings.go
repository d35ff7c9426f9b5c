package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPollInterval bounds how long the live loop waits for a key before
// it re-checks for cancellation.
const DefaultPollInterval = 500 * time.Millisecond

// DefaultPrompt is shown in front of the live query.
const DefaultPrompt = "> "

// Settings holds user-tunable behavior read from config.yaml.
type Settings struct {
	PollInterval time.Duration
	Prompt       string
	LogLevel     string
}

// settingsFile mirrors the YAML layout; durations are strings like "250ms".
type settingsFile struct {
	PollInterval string  `yaml:"poll_interval"`
	Prompt       *string `yaml:"prompt"`
	LogLevel     string  `yaml:"log_level"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		PollInterval: DefaultPollInterval,
		Prompt:       DefaultPrompt,
		LogLevel:     "info",
	}
}

// LoadSettings reads path and merges it over the defaults. A missing file is
// not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings over the defaults.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	if f.PollInterval != "" {
		d, err := time.ParseDuration(f.PollInterval)
		if err != nil {
			return s, fmt.Errorf("poll_interval: %w", err)
		}
		if d <= 0 {
			return s, fmt.Errorf("poll_interval must be positive, got %s", d)
		}
		s.PollInterval = d
	}
	if f.Prompt != nil {
		s.Prompt = *f.Prompt
	}
	if f.LogLevel != "" {
		lvl := strings.ToLower(strings.TrimSpace(f.LogLevel))
		if lvl != "info" && lvl != "debug" {
			return s, fmt.Errorf("log_level must be info or debug, got %q", f.LogLevel)
		}
		s.LogLevel = lvl
	}
	return s, nil
}
