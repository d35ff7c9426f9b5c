// Package live runs the interactive search: every keystroke edits the query,
// re-filters the directory and repaints the screen.
package live

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"

	"github.com/VoxDroid/rolo/internal/cancel"
	"github.com/VoxDroid/rolo/internal/command"
	"github.com/VoxDroid/rolo/internal/config"
	"github.com/VoxDroid/rolo/internal/record"
	"github.com/VoxDroid/rolo/internal/terminal"
)

// KeySource yields keyboard events, waiting at most timeout for each.
type KeySource interface {
	Poll(timeout time.Duration) (terminal.Key, bool, error)
}

// Display is the subset of terminal.Screen the loop paints with.
type Display interface {
	Clear()
	MoveTo(row, col int)
	Line(text string)
	Rows() int
	Flush() error
}

// Releaser is satisfied by *terminal.Guard.
type Releaser interface {
	Release()
}

// Result is what a committed line did.
type Result struct {
	// Status is shown under the prompt on the next repaint.
	Status string
	Quit   bool
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// Loop is the live-filter state machine. Records, Keys, Screen and Flag are
// required.
type Loop struct {
	// Records is called once per outer pass for a fresh snapshot.
	Records func(ctx context.Context) ([]record.Record, error)
	Keys    KeySource
	Screen  Display
	Flag    *cancel.Flag
	// Commit handles a line submitted with Enter. Nil ignores submissions.
	Commit       func(ctx context.Context, line string) (Result, error)
	PollInterval time.Duration
	Prompt       string
	Log          logr.Logger
}

type passEnd int

const (
	passStopped passEnd = iota
	passCommitted
)

// RunGuarded runs the loop and releases g on every exit path, including
// errors and panics.
func (l *Loop) RunGuarded(ctx context.Context, g Releaser) error {
	defer g.Release()
	return l.Run(ctx)
}

// Run repeats passes until the flag stops, a command quits or an error from
// the key source or record source ends it.
func (l *Loop) Run(ctx context.Context) error {
	if l.PollInterval <= 0 {
		l.PollInterval = config.DefaultPollInterval
	}
	if l.Log.GetSink() == nil {
		l.Log = logr.Discard()
	}
	status := ""
	for l.Flag.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := l.Records(ctx)
		if err != nil {
			return fmt.Errorf("load records: %w", err)
		}
		line, end, err := l.pass(ctx, records, status)
		if err != nil {
			return err
		}
		if end == passStopped {
			break
		}
		res, quit := l.commit(ctx, line)
		if quit {
			return nil
		}
		status = res
	}
	l.Log.V(1).Info("live loop stopped")
	return nil
}

// pass owns one query buffer from empty until Enter or cancellation.
func (l *Loop) pass(ctx context.Context, records []record.Record, status string) (string, passEnd, error) {
	var query []rune
	l.redraw("", record.Filter(records, ""), status)
	for {
		if !l.Flag.Running() {
			return "", passStopped, nil
		}
		if err := ctx.Err(); err != nil {
			return "", passStopped, err
		}
		key, ok, err := l.Keys.Poll(l.PollInterval)
		if err != nil {
			return "", passStopped, fmt.Errorf("read key: %w", err)
		}
		if !ok {
			continue
		}
		switch key.Kind {
		case terminal.KeyRune:
			query = append(query, key.Rune)
		case terminal.KeyBackspace:
			if len(query) == 0 {
				continue
			}
			query = query[:len(query)-1]
		case terminal.KeyEnter:
			return string(query), passCommitted, nil
		case terminal.KeyInterrupt:
			l.Flag.Stop()
			return "", passStopped, nil
		default:
			continue
		}
		q := string(query)
		l.redraw(q, record.Filter(records, q), "")
	}
}

// commit hands line to Commit and returns the status to show next.
func (l *Loop) commit(ctx context.Context, line string) (string, bool) {
	if l.Commit == nil {
		return "", false
	}
	res, err := l.Commit(ctx, line)
	if err != nil {
		var pe *command.ParseError
		if !errors.As(err, &pe) {
			l.Log.Error(err, "command failed", "line", line)
		}
		return "error: " + err.Error(), false
	}
	l.Log.V(1).Info("command committed", "line", line, "quit", res.Quit)
	return res.Status, res.Quit
}

// redraw paints prompt, status and matches, then parks the cursor after the
// query. Write failures are logged; the loop keeps going so the terminal
// guard is never abandoned mid-session.
func (l *Loop) redraw(query string, view []record.Record, status string) {
	s := l.Screen
	s.Clear()
	s.Line(promptStyle.Render(l.Prompt) + query)
	used := 1
	if status != "" {
		for _, ln := range strings.Split(status, "\n") {
			s.Line(statusStyle.Render(ln))
			used++
		}
	}
	shown := view
	more := 0
	if rows := s.Rows(); rows > 0 {
		room := rows - used - 1
		if room < 1 {
			room = 1
		}
		if len(view) > room {
			shown, more = view[:room-1], len(view)-(room-1)
		}
	}
	if len(view) == 0 {
		s.Line("  (none)")
	}
	for _, r := range shown {
		s.Line("  " + r.String())
	}
	if more > 0 {
		s.Line(statusStyle.Render(fmt.Sprintf("  … %d more", more)))
	}
	s.MoveTo(1, runewidth.StringWidth(l.Prompt+query)+1)
	if err := s.Flush(); err != nil {
		l.Log.Error(err, "redraw failed")
	}
}
