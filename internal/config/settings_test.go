package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
	if s.PollInterval != 500*time.Millisecond {
		t.Fatalf("expected 500ms default poll interval, got %s", s.PollInterval)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := "poll_interval: 250ms\nprompt: \"search: \"\nlog_level: DEBUG\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := LoadSettings(p)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.PollInterval != 250*time.Millisecond || s.Prompt != "search: " || s.LogLevel != "debug" {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestParseSettingsRejectsBadValues(t *testing.T) {
	cases := []string{
		"poll_interval: soon\n",
		"poll_interval: -1s\n",
		"log_level: trace\n",
		"poll_interval: [\n",
	}
	for _, c := range cases {
		if _, err := ParseSettings([]byte(c)); err == nil {
			t.Fatalf("expected error for %q", c)
		}
	}
}

func TestParseSettingsEmptyPromptAllowed(t *testing.T) {
	s, err := ParseSettings([]byte("prompt: \"\"\n"))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if s.Prompt != "" {
		t.Fatalf("expected empty prompt, got %q", s.Prompt)
	}
}
