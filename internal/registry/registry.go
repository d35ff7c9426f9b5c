package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/VoxDroid/rolo/internal/nameutil"
	"github.com/VoxDroid/rolo/internal/record"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Repository provides CRUD operations for directory records.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectRecords = "SELECT id, name, company, phone, created_at FROM records"

// List returns every record in insertion order.
func (r *Repository) List(ctx context.Context) ([]record.Record, error) {
	return r.query(ctx, r.db, selectRecords+" ORDER BY id ASC")
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *Repository) query(ctx context.Context, q queryer, stmt string, args ...any) ([]record.Record, error) {
	rows, err := q.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []record.Record
	for rows.Next() {
		var rw row
		if err := rows.Scan(&rw.ID, &rw.Name, &rw.Company, &rw.Phone, &rw.CreatedAt); err != nil {
			return nil, err
		}
		rec, ok := rw.toRecord()
		if !ok {
			// the CHECK constraint makes this unreachable for rows we wrote
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns the record with the given id or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (record.Record, error) {
	recs, err := r.query(ctx, r.db, selectRecords+" WHERE id = ?", id)
	if err != nil {
		return record.Record{}, err
	}
	if len(recs) == 0 {
		return record.Record{}, ErrNotFound
	}
	return recs[0], nil
}

// Add validates and inserts a record, returning it with its assigned id.
func (r *Repository) Add(ctx context.Context, ident record.Ident, phone string) (record.Record, error) {
	ident, phone, err := clean(ident, phone)
	if err != nil {
		return record.Record{}, err
	}
	name, company := columns(ident)
	res, err := r.db.ExecContext(ctx, "INSERT INTO records (name, company, phone, created_at) VALUES (?, ?, ?, datetime('now'))", name, company, phone)
	if err != nil {
		return record.Record{}, fmt.Errorf("insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return record.Record{}, err
	}
	return record.Record{ID: id, Ident: ident, Phone: phone}, nil
}

// clean sanitizes and validates the user-supplied fields of a record.
func clean(ident record.Ident, phone string) (record.Ident, string, error) {
	if ident == nil {
		return nil, "", fmt.Errorf("invalid record: a name or company is required")
	}
	name, company := record.Parts(ident)
	name, _ = nameutil.SanitizeName(name)
	company, _ = nameutil.SanitizeName(company)
	if name != "" {
		if err := nameutil.ValidateName("name", name); err != nil {
			return nil, "", err
		}
	}
	if company != "" {
		if err := nameutil.ValidateName("company", company); err != nil {
			return nil, "", err
		}
	}
	phone = strings.TrimSpace(phone)
	if err := nameutil.ValidatePhone(phone); err != nil {
		return nil, "", err
	}
	ident = record.NewIdent(name, company)
	if ident == nil {
		return nil, "", fmt.Errorf("invalid record: a name or company is required")
	}
	return ident, phone, nil
}

// Delete removes the record with the given id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMatching removes every record the live filter would show for query
// and returns what was removed. An empty query is rejected rather than
// wiping the directory.
func (r *Repository) DeleteMatching(ctx context.Context, query string) ([]record.Record, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("delete: a query is required")
	}
	trx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = trx.Rollback() }()

	all, err := r.query(ctx, trx, selectRecords+" ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	doomed := record.Filter(all, query)
	for _, rec := range doomed {
		if _, err := trx.ExecContext(ctx, "DELETE FROM records WHERE id = ?", rec.ID); err != nil {
			return nil, fmt.Errorf("delete record %d: %w", rec.ID, err)
		}
	}
	if err := trx.Commit(); err != nil {
		return nil, err
	}
	return doomed, nil
}

// ReplaceAll swaps the whole directory for recs inside one transaction.
// Ids are reassigned; the order of recs is kept.
func (r *Repository) ReplaceAll(ctx context.Context, recs []record.Record) error {
	trx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()

	if _, err := trx.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	if err := insertAll(ctx, trx, recs); err != nil {
		return err
	}
	return trx.Commit()
}

// AppendAll inserts recs after the existing records in one transaction.
func (r *Repository) AppendAll(ctx context.Context, recs []record.Record) error {
	trx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()
	if err := insertAll(ctx, trx, recs); err != nil {
		return err
	}
	return trx.Commit()
}

func insertAll(ctx context.Context, trx *sql.Tx, recs []record.Record) error {
	for i, rec := range recs {
		ident, phone, err := clean(rec.Ident, rec.Phone)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		name, company := columns(ident)
		if _, err := trx.ExecContext(ctx, "INSERT INTO records (name, company, phone, created_at) VALUES (?, ?, ?, datetime('now'))", name, company, phone); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}
	return nil
}

// Count returns the number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
