package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/cmd/tui/ui"
	modelpkg "github.com/VoxDroid/rolo/internal/tui/model"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the directory in a full-screen terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()

		uiModel := modelpkg.New(repo)
		if err := uiModel.RefreshList(cmd.Context()); err != nil {
			return err
		}
		_, err = ui.NewProgram(uiModel).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
