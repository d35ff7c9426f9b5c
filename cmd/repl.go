package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/config"
	"github.com/VoxDroid/rolo/internal/dispatch"
	"github.com/VoxDroid/rolo/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Line-oriented prompt; works with piped input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logFor(cmd)
		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()

		total, err := repo.Count(cmd.Context())
		if err != nil {
			return err
		}
		src, err := config.DBPath()
		if err != nil {
			return err
		}
		d := dispatch.New(repo, log)
		return repl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), d, repl.Welcome{Source: src, Total: total}, log)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
