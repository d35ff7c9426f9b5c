//go:build integration && !windows

package live

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/VoxDroid/rolo/internal/cancel"
	"github.com/VoxDroid/rolo/internal/record"
	"github.com/VoxDroid/rolo/internal/terminal"
)

// syncBuffer collects what the loop paints on the pty.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

// lastFrame returns the output painted after the most recent clear.
func (s *syncBuffer) lastFrame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.b.String()
	if i := strings.LastIndex(out, "\x1b[2J"); i >= 0 {
		return out[i:]
	}
	return out
}

// This test drives the loop through a real pseudo-terminal in raw mode so
// key decoding, polling and the guard run against an actual TTY.
func TestLiveLoop_Pty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not supported: %v", err)
	}
	defer func() { _ = ptmx.Close(); _ = tty.Close() }()
	if err := pty.Setsize(tty, &pty.Winsize{Cols: 100, Rows: 30}); err != nil {
		t.Logf("pty size set failed: %v", err)
	}

	out := &syncBuffer{}
	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				_, _ = out.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	guard, err := terminal.Acquire(tty, logr.Discard())
	require.NoError(t, err)

	flag := cancel.New()
	l := &Loop{
		Records: func(context.Context) ([]record.Record, error) {
			return []record.Record{
				{ID: 1, Ident: record.Name("Alice"), Phone: "1234567890"},
				{ID: 2, Ident: record.Company("Acme Inc"), Phone: "9876543210"},
				{ID: 3, Ident: record.Both{Company: "Test Company", Name: "Bob"}, Phone: "10293848576"},
			}, nil
		},
		Keys:         terminal.NewKeyReader(tty),
		Screen:       terminal.NewScreen(tty),
		Flag:         flag,
		PollInterval: 50 * time.Millisecond,
		Prompt:       "> ",
	}
	done := make(chan error, 1)
	go func() { done <- l.RunGuarded(context.Background(), guard) }()

	require.Eventually(t, func() bool { return strings.Contains(out.lastFrame(), "Alice") }, 5*time.Second, 20*time.Millisecond)

	_, err = ptmx.Write([]byte("bo"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		f := out.lastFrame()
		return strings.Contains(f, "> bo") && strings.Contains(f, "Bob (Test Company)") && !strings.Contains(f, "Alice")
	}, 5*time.Second, 20*time.Millisecond)

	_, err = ptmx.Write([]byte{0x03})
	require.NoError(t, err)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after ctrl-c")
	}
	require.False(t, flag.Running())

	// the guard is free again once the loop has returned
	g2, err := terminal.Acquire(tty, logr.Discard())
	require.NoError(t, err)
	g2.Release()
}
