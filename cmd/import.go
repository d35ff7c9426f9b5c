package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/importer"
	"github.com/VoxDroid/rolo/internal/record"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import records from a JSON file or another rolo database",
	Long: "Import records from a JSON file ([{\"name\",\"company\",\"phone\"}]) or, with\n" +
		"--db, from another rolo database. Records are appended unless --replace\n" +
		"is given. --db --replace swaps the whole database file.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		fromDB, _ := cmd.Flags().GetBool("db")
		replace, _ := cmd.Flags().GetBool("replace")
		log := logFor(cmd)

		if _, err := os.Stat(src); err != nil {
			return err
		}
		if fromDB && replace {
			if err := importer.ImportDatabase(src, true); err != nil {
				return err
			}
			log.Info("database replaced", "source", src)
			fmt.Fprintf(cmd.OutOrStdout(), "imported database from %s\n", src)
			return nil
		}

		var recs []record.Record
		var err error
		if fromDB {
			recs, err = importer.ReadDatabase(cmd.Context(), src)
		} else {
			recs, err = importer.ReadJSON(src)
		}
		if err != nil {
			return err
		}

		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()
		if replace {
			err = repo.ReplaceAll(cmd.Context(), recs)
		} else {
			err = repo.AppendAll(cmd.Context(), recs)
		}
		if err != nil {
			return err
		}
		log.Info("records imported", "source", src, "count", len(recs), "replace", replace)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d record(s) from %s\n", len(recs), src)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("db", false, "Source is a rolo database file")
	importCmd.Flags().Bool("replace", false, "Replace the directory instead of appending")
	rootCmd.AddCommand(importCmd)
}
