package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/cancel"
	"github.com/VoxDroid/rolo/internal/command"
	"github.com/VoxDroid/rolo/internal/dispatch"
	"github.com/VoxDroid/rolo/internal/live"
	"github.com/VoxDroid/rolo/internal/terminal"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Filter the directory as you type (default)",
	Long: "Filter the directory as you type. Enter runs the line as a command\n" +
		"(/add, /delete, /list, /help, /quit); Ctrl-C exits.",
	Args: cobra.NoArgs,
	RunE: runLive,
}

// The live loop takes over these directly; tests swap them.
var (
	ttyIn  = os.Stdin
	ttyOut = os.Stdout
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, _ []string) error {
	log := logFor(cmd)
	repo, closeRepo, err := openRepo()
	if err != nil {
		return err
	}
	defer closeRepo()

	flag := cancel.New()
	stopSignals, err := cancel.Install(flag)
	if err != nil {
		return err
	}
	defer stopSignals()

	guard, err := terminal.Acquire(ttyIn, log)
	if err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			return fmt.Errorf("%w; use `rolo repl` for piped input", err)
		}
		return err
	}

	d := dispatch.New(repo, log)
	screen := terminal.NewScreen(ttyOut)
	loop := &live.Loop{
		Records: repo.List,
		Keys:    terminal.NewKeyReader(ttyIn),
		Screen:  screen,
		Flag:    flag,
		Commit: func(ctx context.Context, line string) (live.Result, error) {
			c, err := command.Parse(line)
			if err != nil {
				return live.Result{}, err
			}
			out, err := d.Execute(ctx, c)
			if err != nil {
				return live.Result{}, err
			}
			return live.Result{Status: out.Summary(), Quit: out.Quit}, nil
		},
		PollInterval: settings.PollInterval,
		Prompt:       settings.Prompt,
		Log:          log,
	}
	log.Info("live loop starting", "poll_interval", settings.PollInterval.String())
	runErr := loop.RunGuarded(cmd.Context(), guard)

	screen.Clear()
	if err := screen.Flush(); err != nil {
		log.Error(err, "clear screen on exit")
	}
	return runErr
}
