package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// triggersSQL references columns added by upgrades, so it runs after them.
//
//go:embed triggers.sql
var triggersSQL string

// SchemaVersion is stored in the meta table after migrations run.
const SchemaVersion = 2

// ApplyMigrations applies the embedded schema and the upgrade steps needed
// by databases created with an older schema.
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if err := ensureRecordColumns(db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if _, err := db.Exec(triggersSQL); err != nil {
		return fmt.Errorf("apply triggers: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO meta (key, value) VALUES ('schema_version', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, strconv.Itoa(SchemaVersion)); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// ensureRecordColumns adds the company column to version 1 databases, which
// only knew about person names.
func ensureRecordColumns(db *sql.DB) error {
	rows, err := db.Query("PRAGMA table_info(records)")
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if !cols["company"] {
		if _, err := db.Exec("ALTER TABLE records ADD COLUMN company TEXT"); err != nil {
			return err
		}
	}
	return nil
}

// Version reports the schema version recorded in db, or 0 when none is.
func Version(db *sql.DB) (int, error) {
	var v string
	err := db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}
