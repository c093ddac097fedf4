// Package config loads and saves the user settings: API keys, backend
// preferences and the selected model.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/checkmarble/llmrouter/internal/utils"
	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "SAMWISE"

	appDirectory = "samwise"
	fileName     = "config.json"
)

type Config struct {
	Llm           LlmConfig `json:"llm" mapstructure:"llm"`
	SelectedModel string    `json:"selected_model" mapstructure:"selected_model" jsonschema_description:"Model used when none is given"`
	GlobalHotkey  string    `json:"global_hotkey" mapstructure:"global_hotkey" jsonschema_description:"Shortcut triggering a transformation"`
	PromptsFile   string    `json:"prompts_file,omitempty" mapstructure:"prompts_file" jsonschema_description:"YAML file with additional prompts"`
}

type LlmConfig struct {
	OpenAiApiKey     *string `json:"openai_api_key" mapstructure:"openai_api_key" jsonschema_description:"OpenAI API key"`
	AnthropicApiKey  *string `json:"anthropic_api_key" mapstructure:"anthropic_api_key" jsonschema_description:"Anthropic API key"`
	AtlasCloudApiKey *string `json:"atlascloud_api_key" mapstructure:"atlascloud_api_key" jsonschema_description:"AtlasCloud API key"`

	UseClaudeCli             bool `json:"use_claude_cli" mapstructure:"use_claude_cli" jsonschema_description:"Send Claude models to the local claude executable"`
	ForceAtlasCloudForClaude bool `json:"force_atlascloud_for_claude" mapstructure:"force_atlascloud_for_claude" jsonschema_description:"Send anthropic/... models to AtlasCloud even when the local executable is preferred"`

	ClaudeCliCommand string `json:"claude_cli_command,omitempty" mapstructure:"claude_cli_command" jsonschema_description:"Command starting the claude executable"`
	ClaudeCliModel   string `json:"claude_cli_model" mapstructure:"claude_cli_model" jsonschema_description:"Model requested from the claude executable, its own default when empty"`

	RejectEmptyResponses bool `json:"reject_empty_responses,omitempty" mapstructure:"reject_empty_responses" jsonschema_description:"Treat an empty output as an error"`
}

func Default() Config {
	return Config{
		Llm: LlmConfig{
			UseClaudeCli:     true,
			ClaudeCliCommand: "claude",
		},
		SelectedModel: "claude-3-5-sonnet",
		GlobalHotkey:  "CmdOrCtrl+Shift+Space",
	}
}

// DefaultPath is the location of the configuration file in the user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "could not find user configuration directory")
	}

	return filepath.Join(dir, appDirectory, fileName), nil
}

// Policy converts the settings to the routing policy of a call.
func (c Config) Policy() llmrouter.Policy {
	return llmrouter.Policy{
		PreferLocalCli:              c.Llm.UseClaudeCli,
		ForceRemoteForLocalProvider: c.Llm.ForceAtlasCloudForClaude,
		AnthropicApiKey:             c.Llm.AnthropicApiKey,
		AtlasCloudApiKey:            c.Llm.AtlasCloudApiKey,
		OpenAiApiKey:                c.Llm.OpenAiApiKey,
		RejectEmptyResponses:        c.Llm.RejectEmptyResponses,
	}
}

// Load reads the configuration file at path. Every setting can be overridden
// by an environment variable, `SAMWISE_LLM_OPENAI_API_KEY` for `llm.openai_api_key`.
//
// A missing file is not an error. An unreadable one still yields the
// defaults, along with the error.
func Load(path string) (Config, error) {
	v := newViper()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")

		if err := v.ReadInConfig(); err != nil {
			return Default(), errors.Wrapf(err, "could not read configuration file '%s'", path)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), errors.Wrap(err, "could not decode configuration")
	}

	return cfg, nil
}

// Save writes the configuration to path, creating its directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "could not create configuration directory")
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode configuration")
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		return errors.Wrapf(err, "could not write configuration file '%s'", path)
	}

	return nil
}

// Schema describes the configuration file.
func Schema() jsonschema.Schema {
	return utils.GenerateSchema[Config]("Samwise configuration", "Settings of the text transformation client")
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := Default()

	v.SetDefault("llm.use_claude_cli", defaults.Llm.UseClaudeCli)
	v.SetDefault("llm.force_atlascloud_for_claude", defaults.Llm.ForceAtlasCloudForClaude)
	v.SetDefault("llm.claude_cli_command", defaults.Llm.ClaudeCliCommand)
	v.SetDefault("llm.claude_cli_model", defaults.Llm.ClaudeCliModel)
	v.SetDefault("llm.reject_empty_responses", defaults.Llm.RejectEmptyResponses)
	v.SetDefault("selected_model", defaults.SelectedModel)
	v.SetDefault("global_hotkey", defaults.GlobalHotkey)
	v.SetDefault("prompts_file", defaults.PromptsFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("llm.openai_api_key")
	_ = v.BindEnv("llm.anthropic_api_key")
	_ = v.BindEnv("llm.atlascloud_api_key")

	return v
}
