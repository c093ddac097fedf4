package main

import (
	"fmt"
	"text/tabwriter"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/checkmarble/llmrouter/config"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models and where they are sent with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, cfg, err := loadConfig(newLogger())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "ID\tNAME\tBACKEND\t")

		for _, model := range config.Models() {
			marker := ""
			if model.Id == cfg.SelectedModel {
				marker = "*"
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", model.Id, model.Name, describeRoute(cfg, model.Id), marker)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func describeRoute(cfg config.Config, model string) string {
	route, err := cfg.Route(model)
	if err != nil {
		var berr *llmrouter.BackendError

		if errors.As(err, &berr) && berr.Kind == llmrouter.MissingCredential {
			return fmt.Sprintf("%s (no %s)", berr.Backend, berr.Credential)
		}

		return err.Error()
	}

	return route.Backend.String()
}
