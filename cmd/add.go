package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/rolo/internal/command"
	"github.com/VoxDroid/rolo/internal/dispatch"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a record",
	Long: "Add a record. Use - as the name together with --company for a\n" +
		"company-only entry:\n  rolo add - 555-0100 --company \"Acme Inc\"",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeRepo, err := openRepo()
		if err != nil {
			return err
		}
		defer closeRepo()

		cargs := append([]string(nil), args...)
		if company, _ := cmd.Flags().GetString("company"); company != "" {
			cargs = append(cargs, company)
		}
		d := dispatch.New(repo, logFor(cmd))
		out, err := d.Execute(cmd.Context(), command.Command{Kind: command.Add, Word: "/add", Args: cargs})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Message)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("company", "c", "", "Company name")
	rootCmd.AddCommand(addCmd)
}
