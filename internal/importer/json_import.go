package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/VoxDroid/rolo/internal/record"
)

// Entry is one element of a JSON record file. Files written by older tools
// carry only name and phone.
type Entry struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone"`
}

// ReadJSON loads a JSON record file.
func ReadJSON(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return DecodeJSON(f)
}

// DecodeJSON parses a JSON array of entries. Entries without a name or
// company are rejected with their position.
func DecodeJSON(r io.Reader) ([]record.Record, error) {
	var entries []Entry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	out := make([]record.Record, 0, len(entries))
	for i, e := range entries {
		id := record.NewIdent(e.Name, e.Company)
		if id == nil {
			return nil, fmt.Errorf("entry %d: a name or company is required", i+1)
		}
		out = append(out, record.Record{Ident: id, Phone: e.Phone})
	}
	return out, nil
}
