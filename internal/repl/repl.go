// Package repl is the line-oriented front end: read a line, run it, print
// the result. It needs no raw mode and works on pipes.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"

	"github.com/VoxDroid/rolo/internal/command"
	"github.com/VoxDroid/rolo/internal/dispatch"
	"github.com/VoxDroid/rolo/internal/record"
)

// Prompt is printed before every line is read.
const Prompt = "> "

const bannerWidth = 47

// Welcome is shown once before the first prompt.
type Welcome struct {
	Source string
	Total  int
}

// Executor runs one parsed command; *dispatch.Dispatcher satisfies it.
type Executor interface {
	Execute(ctx context.Context, cmd command.Command) (dispatch.Outcome, error)
}

// Run reads commands from in until /quit, EOF or ctx is done.
func Run(ctx context.Context, in io.Reader, out io.Writer, ex Executor, welcome Welcome, log logr.Logger) error {
	w := bufio.NewWriter(out)
	defer func() { _ = w.Flush() }()

	printWelcome(w, welcome)
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(w, Prompt)
		if err := w.Flush(); err != nil {
			return err
		}
		if !sc.Scan() {
			fmt.Fprintln(w)
			return sc.Err()
		}
		quit, err := step(ctx, w, ex, sc.Text())
		if err != nil {
			if !isParseError(err) {
				log.Error(err, "command failed")
			}
			fmt.Fprintf(w, "Error processing input: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

func step(ctx context.Context, w io.Writer, ex Executor, line string) (bool, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return false, err
	}
	out, err := ex.Execute(ctx, cmd)
	if err != nil {
		return false, err
	}
	if out.Quit {
		return true, nil
	}
	fmt.Fprintln(w, out.Message)
	switch out.Kind {
	case command.Search, command.List:
		printRecords(w, out.Records)
	case command.Delete:
		if len(out.Records) > 0 {
			printRecords(w, out.Records)
		}
	}
	return false, nil
}

func printRecords(w io.Writer, recs []record.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "    (none)")
		return
	}
	for _, r := range recs {
		fmt.Fprintf(w, "    %s\n", r)
	}
}

func printWelcome(w io.Writer, wl Welcome) {
	border := strings.Repeat("*", bannerWidth)
	fmt.Fprintln(w, border)
	bannerLine(w, centre("Welcome to rolo", bannerWidth-4))
	bannerLine(w, "")
	bannerLine(w, "Loading records from : "+wl.Source)
	bannerLine(w, fmt.Sprintf("Total Records: %d", wl.Total))
	bannerLine(w, "")
	bannerLine(w, `Type "/help" for help`)
	fmt.Fprintln(w, border)
}

// bannerLine pads text into the starred box; long text pushes the border out.
func bannerLine(w io.Writer, text string) {
	fmt.Fprintf(w, "* %-*s *\n", bannerWidth-4, text)
}

func centre(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}

func isParseError(err error) bool {
	var pe *command.ParseError
	return errors.As(err, &pe)
}
