// Package terminal owns the raw-mode lifecycle, keyboard decoding and the
// escape sequences used to repaint the screen.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when the input is not a TTY.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrAlreadyRaw is returned when a Guard is already live in this process.
	ErrAlreadyRaw = errors.New("raw mode already acquired")
)

// TerminalError reports a failed terminal configuration call. It is fatal
// for the interactive front end.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string { return fmt.Sprintf("terminal %s: %v", e.Op, e.Err) }

func (e *TerminalError) Unwrap() error { return e.Err }

// isTerminal, makeRaw and restoreTerminal wrap terminal mode changes so tests
// can simulate a TTY without one.
var (
	isTerminal      = term.IsTerminal
	makeRaw         = term.MakeRaw
	restoreTerminal = term.Restore
)

// live is set while a Guard holds the terminal.
var live atomic.Bool

// Guard represents "the terminal is in raw mode". Release restores the mode
// that was active before Acquire.
type Guard struct {
	fd    int
	state *term.State
	once  sync.Once
	log   logr.Logger
}

// Acquire switches f into raw mode. Only one Guard may be live at a time.
func Acquire(f *os.File, log logr.Logger) (*Guard, error) {
	fd := int(f.Fd())
	if !isTerminal(fd) {
		return nil, &TerminalError{Op: "acquire", Err: ErrNotTerminal}
	}
	if !live.CompareAndSwap(false, true) {
		return nil, &TerminalError{Op: "acquire", Err: ErrAlreadyRaw}
	}
	state, err := makeRaw(fd)
	if err != nil {
		live.Store(false)
		return nil, &TerminalError{Op: "make raw", Err: err}
	}
	log.V(1).Info("terminal in raw mode", "fd", fd)
	return &Guard{fd: fd, state: state, log: log}, nil
}

// Release restores the saved mode. Only the first call does anything; a
// failed restore is logged, not returned.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		if err := restoreTerminal(g.fd, g.state); err != nil {
			g.log.Error(err, "restore terminal mode", "fd", g.fd)
		} else {
			g.log.V(1).Info("terminal mode restored", "fd", g.fd)
		}
		live.Store(false)
	})
}
