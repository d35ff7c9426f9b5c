// Package cmd wires rolo's subcommands together.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/config"
	"github.com/VoxDroid/rolo/internal/logger"
)

var (
	settingsPath string
	debugLog     bool

	// settings is loaded before every command runs.
	settings = config.DefaultSettings()
	logFile  *os.File
)

var rootCmd = &cobra.Command{
	Use:   "rolo",
	Short: "rolo is a SQLite-backed phone directory with a live search",
	Long: "rolo keeps names, companies and phone numbers in a local database.\n" +
		"Run it without a subcommand to filter the directory as you type.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runLive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "Settings file (default <data dir>/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Log at debug level")
}

// setup loads settings and starts the file logger. The interactive front ends
// own the terminal, so logs always go to the log file.
func setup(cmd *cobra.Command, _ []string) error {
	path := settingsPath
	if path == "" {
		p, err := config.SettingsPath()
		if err != nil {
			return err
		}
		path = p
	}
	s, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	settings = s

	if logFile == nil {
		if _, err := config.EnsureDataDir(); err != nil {
			return err
		}
		lp, err := config.LogPath()
		if err != nil {
			return err
		}
		f, err := os.OpenFile(lp, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
	}
	log := logger.Init(logFile, debugLog || settings.LogLevel == "debug")
	l := log.WithValues(logger.CommandKey, cmd.Name())
	cmd.SetContext(logger.WithLogger(cmd.Context(), &l))
	return nil
}

// logFor returns the logger set up for cmd.
func logFor(cmd *cobra.Command) logr.Logger {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return *logger.FromContext(ctx)
}

// Execute executes the root command
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
