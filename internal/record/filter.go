package record

import "strings"

// Matches reports whether query selects r. Identifier fields match on a
// case-insensitive substring. The phone matches only when it starts with the
// query.
func (r Record) Matches(query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if r.Ident != nil {
		for _, f := range r.Ident.Fields() {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
	}
	return strings.HasPrefix(strings.ToLower(r.Phone), q)
}

// Filter returns the records matching query in their original order. It is a
// linear scan with no index, cheap enough to rerun on every keystroke for
// directory-sized inputs.
func Filter(records []Record, query string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Matches(query) {
			out = append(out, r)
		}
	}
	return out
}
