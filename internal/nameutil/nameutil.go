// Package nameutil cleans and validates the free-text fields of a directory
// entry: person names, company names and phone numbers.
package nameutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFieldLen bounds every stored field, counted in runes.
const MaxFieldLen = 128

// ValidateName checks a person or company name. field names the value in the
// returned error ("name", "company"). The input is not mutated; run
// SanitizeName first to drop invisible characters.
func ValidateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("invalid %s: cannot be empty", field)
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("invalid %s: contains invalid encoding", field)
	}
	if n := utf8.RuneCountInString(value); n > MaxFieldLen {
		return fmt.Errorf("invalid %s: %d characters exceeds %d", field, n, MaxFieldLen)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid %s: contains control character U+%04X", field, r)
		}
	}
	return nil
}

// ValidatePhone accepts digits plus the usual separators (space, '-', '.',
// parentheses) and a single leading '+'. At least one digit is required.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("invalid phone: cannot be empty")
	}
	if n := utf8.RuneCountInString(phone); n > MaxFieldLen {
		return fmt.Errorf("invalid phone: %d characters exceeds %d", n, MaxFieldLen)
	}
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return fmt.Errorf("invalid phone: unexpected character %q", r)
		}
	}
	if digits == 0 {
		return fmt.Errorf("invalid phone: no digits")
	}
	return nil
}

// SanitizeName removes control and zero-width characters (the kind that
// sneak in through copy/paste) and trims surrounding whitespace. The boolean
// reports whether anything changed.
func SanitizeName(value string) (string, bool) {
	if value == "" {
		return value, false
	}
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			continue
		}
		b.WriteRune(r)
	}
	res := strings.TrimSpace(b.String())
	return res, res != value
}
