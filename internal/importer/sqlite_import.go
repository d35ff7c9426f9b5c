// Package importer loads records from another rolo database or from a JSON
// record file.
package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"

	"github.com/VoxDroid/rolo/internal/config"
	"github.com/VoxDroid/rolo/internal/registry"
	"github.com/VoxDroid/rolo/internal/record"
)

// ErrNotRoloDB is returned when a source file has no records table.
var ErrNotRoloDB = errors.New("source is not a rolo database")

// ImportDatabase copies srcPath over the active database file. If overwrite
// is false and the destination exists, an error is returned.
func ImportDatabase(srcPath string, overwrite bool) error {
	if err := checkSource(srcPath); err != nil {
		return err
	}
	dst, err := config.DBPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return errors.New("destination database exists; use overwrite=true to replace")
	}
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create dst: %w", err)
	}
	defer func() { _ = out.Close() }()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy db: %w", err)
	}
	return out.Sync()
}

// checkSource refuses files that are missing or lack a records table, so a
// stray path never replaces the directory.
func checkSource(srcPath string) error {
	if _, err := os.Stat(srcPath); err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	src, err := sql.Open("sqlite", srcPath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = src.Close() }()
	var cnt int
	if err := src.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name='records'").Scan(&cnt); err != nil {
		return fmt.Errorf("%w: %v", ErrNotRoloDB, err)
	}
	if cnt == 0 {
		return ErrNotRoloDB
	}
	return nil
}

// ReadDatabase returns every record stored in the rolo database at srcPath
// without modifying it.
func ReadDatabase(ctx context.Context, srcPath string) ([]record.Record, error) {
	if err := checkSource(srcPath); err != nil {
		return nil, err
	}
	src, err := sql.Open("sqlite", srcPath)
	if err != nil {
		return nil, fmt.Errorf("open src: %w", err)
	}
	defer func() { _ = src.Close() }()
	return registry.NewRepository(src).List(ctx)
}
