// Package command turns a committed input line into a command word and its
// arguments.
package command

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseError reports a malformed or unrecognized command line. It is
// recoverable: callers show it to the user and keep going.
type ParseError struct {
	Reason string
	Input  string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Input)
}

const (
	ReasonNoInput      = "no input"
	ReasonUnknown      = "unknown command"
	ReasonUnterminated = "unterminated quote"
)

type scanState int

const (
	outside scanState = iota
	inDouble
	inSingle
)

// Tokenize splits rest into arguments. Double- and single-quoted spans keep
// their inner text (without escape processing) as part of one token;
// unquoted text splits on whitespace. Empty tokens are dropped, so `""`
// yields nothing. A quote left open at end of input is a ParseError.
func Tokenize(rest string) ([]string, error) {
	var (
		toks    []string
		cur     strings.Builder
		state   = outside
		openPos int
	)
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for i, r := range rest {
		switch state {
		case outside:
			switch {
			case r == '"':
				state, openPos = inDouble, i
			case r == '\'':
				state, openPos = inSingle, i
			case unicode.IsSpace(r):
				flush()
			default:
				cur.WriteRune(r)
			}
		case inDouble:
			if r == '"' {
				state = outside
			} else {
				cur.WriteRune(r)
			}
		case inSingle:
			if r == '\'' {
				state = outside
			} else {
				cur.WriteRune(r)
			}
		}
	}
	if state != outside {
		return nil, &ParseError{Reason: ReasonUnterminated, Input: rest[openPos:]}
	}
	flush()
	return toks, nil
}

// Split separates line into its lower-cased command word and the tokenized
// remainder.
func Split(line string) (string, []string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, &ParseError{Reason: ReasonNoInput}
	}
	word, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, rest = line[:i], line[i:]
	}
	args, err := Tokenize(rest)
	if err != nil {
		return "", nil, err
	}
	return strings.ToLower(word), args, nil
}
