package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCliCmd = &cobra.Command{
	Use:   "check-cli",
	Short: "Check that the claude executable can be started",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		version, err := a.cli.Available(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "claude executable available: %s\n", version)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCliCmd)
}
