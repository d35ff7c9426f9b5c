package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenSequences(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)
	s.Clear()
	s.Line("> bo")
	s.Text("x")
	s.MoveTo(1, 5)
	assert.Empty(t, buf.String(), "output is buffered until Flush")
	require.NoError(t, s.Flush())
	assert.Equal(t, "\x1b[2J\x1b[H> bo\r\nx\x1b[1;5H", buf.String())
	assert.Equal(t, 0, s.Rows())
}
