package terminal

import (
	"io"
	"os"
	"time"
	"unicode"
	"unicode/utf8"
)

// KeyKind classifies a keyboard event.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyBackspace
	KeyEnter
	// KeyInterrupt is the Ctrl+C chord. Raw mode turns off ISIG, so it
	// arrives as a byte instead of SIGINT.
	KeyInterrupt
	KeyOther
)

// Key is one decoded keyboard event. Rune is set for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

const (
	ctrlC     = 0x03
	ctrlH     = 0x08
	esc       = 0x1b
	del       = 0x7f
	readChunk = 256
)

// DecodeKey decodes the first key in b and returns it with the number of
// bytes it used. n is 0 when b is empty or ends inside a UTF-8 sequence.
func DecodeKey(b []byte) (Key, int) {
	if len(b) == 0 {
		return Key{}, 0
	}
	switch c := b[0]; {
	case c == ctrlC:
		return Key{Kind: KeyInterrupt}, 1
	case c == del || c == ctrlH:
		return Key{Kind: KeyBackspace}, 1
	case c == '\r':
		if len(b) > 1 && b[1] == '\n' {
			return Key{Kind: KeyEnter}, 2
		}
		return Key{Kind: KeyEnter}, 1
	case c == '\n':
		return Key{Kind: KeyEnter}, 1
	case c == esc:
		return Key{Kind: KeyOther}, escapeLen(b)
	case c < 0x20:
		return Key{Kind: KeyOther}, 1
	}
	if !utf8.FullRune(b) {
		return Key{}, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Key{Kind: KeyOther}, 1
	}
	if !unicode.IsPrint(r) {
		return Key{Kind: KeyOther}, size
	}
	return Key{Kind: KeyRune, Rune: r}, size
}

// escapeLen returns the length of the escape sequence at the start of b: a
// lone ESC, a CSI sequence (ESC [ ... final), an SS3 sequence (ESC O x) or
// an Alt-modified key (ESC x).
func escapeLen(b []byte) int {
	if len(b) == 1 {
		return 1
	}
	switch b[1] {
	case '[':
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return i + 1
			}
		}
		return len(b)
	case 'O':
		if len(b) >= 3 {
			return 3
		}
		return len(b)
	}
	return 2
}

// KeyReader polls a terminal for key events with a bounded wait.
type KeyReader struct {
	f       *os.File
	buf     []byte
	pending []byte
}

// NewKeyReader reads keys from f, normally os.Stdin in raw mode.
func NewKeyReader(f *os.File) *KeyReader {
	return &KeyReader{f: f, buf: make([]byte, readChunk)}
}

// Poll returns the next key. It waits at most timeout for input and reports
// ok=false when none arrived. Bytes read past the first key are kept for
// later calls, so a paste yields one key per call.
func (k *KeyReader) Poll(timeout time.Duration) (Key, bool, error) {
	if key, n := DecodeKey(k.pending); n > 0 {
		k.pending = k.pending[n:]
		return key, true, nil
	}
	ready, err := waitReadable(k.f, timeout)
	if err != nil || !ready {
		return Key{}, false, err
	}
	n, err := k.f.Read(k.buf)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return Key{}, false, err
	}
	k.pending = append(k.pending, k.buf[:n]...)
	key, used := DecodeKey(k.pending)
	if used == 0 {
		return Key{}, false, nil
	}
	k.pending = k.pending[used:]
	return key, true, nil
}
