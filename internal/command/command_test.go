package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{``, nil},
		{`   `, nil},
		{`"Jane Doe" '555-1234'`, []string{"Jane Doe", "555-1234"}},
		{`foo  bar`, []string{"foo", "bar"}},
		{`"" ''  x`, []string{"x"}},
		{`"it's" 'say "hi"'`, []string{"it's", `say "hi"`}},
		{`a"b c"d`, []string{"ab cd"}},
		{`"Case KEPT"`, []string{"Case KEPT"}},
		{"\tname\n", []string{"name"}},
		{`"back\slash"`, []string{`back\slash`}},
	}
	for _, c := range cases {
		got, err := Tokenize(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, "Tokenize(%q)", c.in)
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	for _, in := range []string{`"Jane`, `x 'y`, `ok "a" "b`} {
		_, err := Tokenize(in)
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "expected ParseError for %q, got %v", in, err)
		assert.Equal(t, ReasonUnterminated, pe.Reason)
	}
}

func TestSplit(t *testing.T) {
	word, args, err := Split(`add "Jane Doe" '555-1234'`)
	require.NoError(t, err)
	assert.Equal(t, "add", word)
	assert.Equal(t, []string{"Jane Doe", "555-1234"}, args)

	word, args, err = Split("list")
	require.NoError(t, err)
	assert.Equal(t, "list", word)
	assert.Empty(t, args)

	word, args, err = Split("  LIST   ")
	require.NoError(t, err)
	assert.Equal(t, "list", word)
	assert.Empty(t, args)
}

func TestSplitEmpty(t *testing.T) {
	for _, in := range []string{"", "  \t "} {
		_, _, err := Split(in)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, ReasonNoInput, pe.Reason)
		assert.Equal(t, "no input", pe.Error())
	}
}

func TestParseCommands(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
		args []string
	}{
		{`/add "Jane Doe" 555-1234`, Add, []string{"Jane Doe", "555-1234"}},
		{`/ADD "Jane Doe" 555`, Add, []string{"Jane Doe", "555"}},
		{`/delete jane`, Delete, []string{"jane"}},
		{`/list`, List, nil},
		{`/help`, Help, nil},
		{`/quit`, Quit, nil},
	}
	for _, c := range cases {
		cmd, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.kind, cmd.Kind, c.in)
		assert.Equal(t, c.args, cmd.Args, c.in)
	}
}

func TestParseSearch(t *testing.T) {
	cmd, err := Parse("  Test Company ")
	require.NoError(t, err)
	assert.Equal(t, Search, cmd.Kind)
	assert.Equal(t, "Test Company", cmd.Query())
	assert.Equal(t, "test", cmd.Word)
	assert.Equal(t, []string{"Company"}, cmd.Args)
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/frobnicate now")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ReasonUnknown, pe.Reason)
	assert.Equal(t, "unknown command: /frobnicate", pe.Error())
}

func TestCommandStringRoundTrips(t *testing.T) {
	for _, in := range []string{`/add "Jane Doe" 555-1234`, `/list`, `bob`, `/delete acme`} {
		cmd, err := Parse(in)
		require.NoError(t, err)
		again, err := Parse(cmd.String())
		require.NoError(t, err, cmd.String())
		assert.Equal(t, cmd.Kind, again.Kind)
		assert.Equal(t, cmd.Args, again.Args)
	}
}

func TestCommandStringQuotes(t *testing.T) {
	cmd, err := Parse(`/add "Jane Doe" 555`)
	require.NoError(t, err)
	assert.Equal(t, `/add 'Jane Doe' 555`, cmd.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "/add", Add.String())
	assert.Equal(t, "search", Search.String())
}
