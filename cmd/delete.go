package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/record"
	"github.com/VoxDroid/rolo/internal/utils"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <query>",
	Short: "Delete every record matching a query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		yes, _ := cmd.Flags().GetBool("yes")

		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()

		all, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}
		doomed := record.Filter(all, query)
		if len(doomed) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no matching records")
			return nil
		}
		for _, r := range doomed {
			fmt.Fprintln(cmd.OutOrStdout(), "  " + r.String())
		}
		if !yes && !utils.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %d record(s) permanently?", len(doomed))) {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted")
			return nil
		}
		gone, err := repo.DeleteMatching(cmd.Context(), query)
		if err != nil {
			return err
		}
		logFor(cmd).Info("records deleted", "query", query, "count", len(gone))
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d record(s)\n", len(gone))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(deleteCmd)
}
