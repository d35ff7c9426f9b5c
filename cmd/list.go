package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/record"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory records",
	Long:  "List directory records. Example:\n  rolo list --filter acme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()

		recs, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}
		if q, _ := cmd.Flags().GetString("filter"); q != "" {
			recs = record.Filter(recs, q)
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(none)")
			return nil
		}
		for _, r := range recs {
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("filter", "f", "", "Show only records matching this query")
	rootCmd.AddCommand(listCmd)
}
