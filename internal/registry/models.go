// Package registry stores directory records in SQLite.
package registry

import (
	"database/sql"

	"github.com/VoxDroid/rolo/internal/record"
)

// row mirrors one line of the records table. Exactly one of the identity
// shapes is encoded by which of Name and Company are non-NULL.
type row struct {
	ID        int64
	Name      sql.NullString
	Company   sql.NullString
	Phone     string
	CreatedAt string
}

func (r row) toRecord() (record.Record, bool) {
	id := record.NewIdent(r.Name.String, r.Company.String)
	if id == nil {
		return record.Record{}, false
	}
	return record.Record{ID: r.ID, Ident: id, Phone: r.Phone}, true
}

func columns(id record.Ident) (name, company sql.NullString) {
	n, c := record.Parts(id)
	return sql.NullString{String: n, Valid: n != ""}, sql.NullString{String: c, Valid: c != ""}
}
