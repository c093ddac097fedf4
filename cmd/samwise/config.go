package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/checkmarble/llmrouter/catalog"
	"github.com/checkmarble/llmrouter/config"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const defaultPromptsFile = "prompts.yaml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, with API keys redacted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, cfg, err := loadConfig(newLogger())
		if err != nil {
			return err
		}

		cfg.Llm.OpenAiApiKey = redact(cfg.Llm.OpenAiApiKey)
		cfg.Llm.AnthropicApiKey = redact(cfg.Llm.AnthropicApiKey)
		cfg.Llm.AtlasCloudApiKey = redact(cfg.Llm.AtlasCloudApiKey)

		return printJson(cmd, cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJson(cmd, config.Schema())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and prompt files if they are missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		promptsPath := filepath.Join(filepath.Dir(path), defaultPromptsFile)

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			cfg := config.Default()
			cfg.PromptsFile = promptsPath

			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		}

		created, err := catalog.EnsureUserFile(promptsPath)
		if err != nil {
			return err
		}

		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", promptsPath)
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configSchemaCmd, configInitCmd)

	rootCmd.AddCommand(configCmd)
}

func redact(key *string) *string {
	if lo.FromPtr(key) == "" {
		return key
	}

	return lo.ToPtr("********")
}

func printJson(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}
