package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvRoloHome, tmp)

	d, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv(EnvRoloDB, tmp)

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestDBPathDefaultsUnderDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvRoloHome, tmp)
	t.Setenv(EnvRoloDB, "")

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != filepath.Join(tmp, "rolo.db") {
		t.Fatalf("unexpected db path %s", p)
	}
	lp, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath(): %v", err)
	}
	if lp != filepath.Join(tmp, "rolo.log") {
		t.Fatalf("unexpected log path %s", lp)
	}
}

func TestEnsureDataDirCreatesDir(t *testing.T) {
	t.Setenv(EnvRoloHome, "")
	tmp := t.TempDir()
	// fake home by setting HOME/USERPROFILE
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	d, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("expected dir %s to exist: %v", d, err)
	}
	if filepath.Base(d) != ".rolo" {
		t.Fatalf("expected .rolo dir, got %s", d)
	}
}
