package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Screen buffers repaint output. Lines end in CRLF because raw mode also
// disables output post-processing.
type Screen struct {
	w  *bufio.Writer
	fd int
}

// NewScreen writes to w. When w is a terminal its size is available through
// Rows.
func NewScreen(w io.Writer) *Screen {
	s := &Screen{w: bufio.NewWriter(w), fd: -1}
	if f, ok := w.(*os.File); ok {
		s.fd = int(f.Fd())
	}
	return s
}

// Clear erases the display and homes the cursor.
func (s *Screen) Clear() {
	_, _ = s.w.WriteString(clearScreen + cursorHome)
}

// MoveTo places the cursor at a 1-based row and column.
func (s *Screen) MoveTo(row, col int) {
	_, _ = fmt.Fprintf(s.w, "\x1b[%d;%dH", row, col)
}

// Line writes text followed by CRLF.
func (s *Screen) Line(text string) {
	_, _ = s.w.WriteString(text)
	_, _ = s.w.WriteString("\r\n")
}

// Text writes text without a line break.
func (s *Screen) Text(text string) {
	_, _ = s.w.WriteString(text)
}

// Rows returns the terminal height, or 0 when unknown.
func (s *Screen) Rows() int {
	if s.fd < 0 {
		return 0
	}
	_, h, err := term.GetSize(s.fd)
	if err != nil {
		return 0
	}
	return h
}

// Flush sends buffered output. Write errors surface here.
func (s *Screen) Flush() error { return s.w.Flush() }
