package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the available prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")

		for _, prompt := range a.prompts.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", prompt.Id, prompt.Name, prompt.Description)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}
