package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "samwise",
	Short:         "Transform text with LLMs",
	Long:          "Samwise applies a prompt (fix grammar, summarize, ...) to a text, using the local claude executable, AtlasCloud, Anthropic or OpenAI depending on the model and settings.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: <user config dir>/samwise/config.json)")
	rootCmd.PersistentFlags().StringP("model", "m", "", "Model to use (default: selected model from the configuration)")
	rootCmd.PersistentFlags().String("prompts", "", "YAML file with additional prompts")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("prompts", rootCmd.PersistentFlags().Lookup("prompts"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("SAMWISE")
	viper.AutomaticEnv()
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn

	switch {
	case viper.GetBool("debug"):
		level = slog.LevelDebug
	case viper.GetBool("verbose"):
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
