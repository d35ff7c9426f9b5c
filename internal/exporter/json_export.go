package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VoxDroid/rolo/internal/importer"
	"github.com/VoxDroid/rolo/internal/record"
)

// WriteJSON writes recs to path in the format importer.ReadJSON reads,
// replacing any existing file.
func WriteJSON(path string, recs []record.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeJSON(f, recs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodeJSON writes recs as an indented JSON array.
func EncodeJSON(w io.Writer, recs []record.Record) error {
	entries := make([]importer.Entry, 0, len(recs))
	for _, r := range recs {
		name, company := record.Parts(r.Ident)
		entries = append(entries, importer.Entry{Name: name, Company: company, Phone: r.Phone})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}
