package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the directory as JSON, or copy the database with --db",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := args[0]
		if asDB, _ := cmd.Flags().GetBool("db"); asDB {
			if err := exporter.ExportDatabase(dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported database to %s\n", dst)
			return nil
		}

		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()
		recs, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}
		if err := exporter.WriteJSON(dst, recs); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d record(s) to %s\n", len(recs), dst)
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("db", false, "Copy the SQLite database file instead of writing JSON")
	rootCmd.AddCommand(exportCmd)
}
