package main

import (
	"log/slog"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/checkmarble/llmrouter/catalog"
	"github.com/checkmarble/llmrouter/config"
	"github.com/checkmarble/llmrouter/llms/anthropic"
	"github.com/checkmarble/llmrouter/llms/atlascloud"
	"github.com/checkmarble/llmrouter/llms/claudecli"
	"github.com/checkmarble/llmrouter/llms/openai"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// app gathers what commands need, built from the configuration and flags.
type app struct {
	logger     *slog.Logger
	configPath string
	config     config.Config
	prompts    *catalog.Catalog
	cli        *claudecli.ClaudeCli
	client     *llmrouter.Client
}

func configPath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	return config.DefaultPath()
}

// loadConfig reads the configuration. An unreadable file is reported and the
// defaults are used.
func loadConfig(logger *slog.Logger) (string, config.Config, error) {
	path, err := configPath()
	if err != nil {
		return "", config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("could not load configuration, using defaults", "path", path, "error", err)
	}

	return path, cfg, nil
}

func newApp() (*app, error) {
	logger := newLogger()

	path, cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	prompts, err := catalog.LoadFile(lo.CoalesceOrEmpty(viper.GetString("prompts"), cfg.PromptsFile))
	if err != nil {
		return nil, err
	}

	cli, err := claudecli.New(
		claudecli.WithCommand(lo.CoalesceOrEmpty(cfg.Llm.ClaudeCliCommand, claudecli.DefaultCommand)),
		claudecli.WithModel(cfg.Llm.ClaudeCliModel))
	if err != nil {
		return nil, err
	}

	gateway, err := atlascloud.New()
	if err != nil {
		return nil, err
	}

	anthropicLlm, err := anthropic.New()
	if err != nil {
		return nil, err
	}

	openaiLlm, err := openai.New()
	if err != nil {
		return nil, err
	}

	client, err := llmrouter.New(
		llmrouter.WithAdapter(llmrouter.BackendLocal, cli),
		llmrouter.WithAdapter(llmrouter.BackendGateway, gateway),
		llmrouter.WithAdapter(llmrouter.BackendAnthropic, anthropicLlm),
		llmrouter.WithAdapter(llmrouter.BackendOpenAi, openaiLlm),
		llmrouter.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &app{
		logger:     logger,
		configPath: path,
		config:     cfg,
		prompts:    prompts,
		cli:        cli,
		client:     client,
	}, nil
}

// model is the model selected by flag, or by the configuration.
func (a *app) model() string {
	return lo.CoalesceOrEmpty(viper.GetString("model"), a.config.SelectedModel)
}
