package command

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Prefix marks a line as a command rather than a search.
const Prefix = "/"

// Kind identifies a parsed command.
type Kind int

const (
	Search Kind = iota
	Add
	Delete
	List
	Help
	Quit
)

var names = map[string]Kind{
	"/add":    Add,
	"/delete": Delete,
	"/list":   List,
	"/help":   Help,
	"/quit":   Quit,
}

func (k Kind) String() string {
	for n, v := range names {
		if v == k {
			return n
		}
	}
	return "search"
}

// Command is one parsed input line.
type Command struct {
	Kind Kind
	// Word is the lower-cased first word of the line.
	Word string
	Args []string
	// Line is the trimmed input.
	Line string
}

// Query is the search text of a Search command: the whole line as typed.
func (c Command) Query() string {
	if c.Kind == Search {
		return c.Line
	}
	return strings.Join(c.Args, " ")
}

// String renders the command with shell-style quoting for logs and status
// lines.
func (c Command) String() string {
	if c.Kind == Search {
		return c.Line
	}
	if len(c.Args) == 0 {
		return c.Word
	}
	return c.Word + " " + shellquote.Join(c.Args...)
}

// Parse tokenizes line and resolves its command word. Lines that do not start
// with Prefix are searches.
func Parse(line string) (Command, error) {
	word, args, err := Split(line)
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Word: word, Args: args, Line: strings.TrimSpace(line)}
	if !strings.HasPrefix(word, Prefix) {
		cmd.Kind = Search
		return cmd, nil
	}
	k, ok := names[word]
	if !ok {
		return Command{}, &ParseError{Reason: ReasonUnknown, Input: word}
	}
	cmd.Kind = k
	return cmd, nil
}
