package config

import (
	"os"
	"path/filepath"
	"testing"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))

	assert.Nil(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Llm.UseClaudeCli)
	assert.Equal(t, "claude-3-5-sonnet", cfg.SelectedModel)
	assert.Equal(t, "CmdOrCtrl+Shift+Space", cfg.GlobalHotkey)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, os.WriteFile(path, []byte(`{
		"llm": {
			"openai_api_key": "sk-openai",
			"anthropic_api_key": null,
			"use_claude_cli": false,
			"claude_cli_model": "claude-3-5-sonnet-20241022"
		},
		"selected_model": "gpt-4",
		"global_hotkey": "CmdOrCtrl+Shift+Space"
	}`), 0o600))

	cfg, err := Load(path)

	assert.Nil(t, err)
	assert.Equal(t, lo.ToPtr("sk-openai"), cfg.Llm.OpenAiApiKey)
	assert.Nil(t, cfg.Llm.AnthropicApiKey)
	assert.Nil(t, cfg.Llm.AtlasCloudApiKey)
	assert.False(t, cfg.Llm.UseClaudeCli)
	assert.Equal(t, "claude", cfg.Llm.ClaudeCliCommand)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Llm.ClaudeCliModel)
	assert.Equal(t, "gpt-4", cfg.SelectedModel)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"llm": `), 0o600))

	cfg, err := Load(path)

	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("SAMWISE_LLM_ATLASCLOUD_API_KEY", "atlaskey")
	t.Setenv("SAMWISE_LLM_USE_CLAUDE_CLI", "false")
	t.Setenv("SAMWISE_SELECTED_MODEL", "openai/gpt-5.1")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))

	assert.Nil(t, err)
	assert.Equal(t, lo.ToPtr("atlaskey"), cfg.Llm.AtlasCloudApiKey)
	assert.False(t, cfg.Llm.UseClaudeCli)
	assert.Equal(t, "openai/gpt-5.1", cfg.SelectedModel)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samwise", "config.json")

	cfg := Default()
	cfg.Llm.AnthropicApiKey = lo.ToPtr("sk-ant")
	cfg.Llm.ForceAtlasCloudForClaude = true

	require.NoError(t, Save(path, cfg))

	info, err := os.Stat(path)

	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(path)

	assert.Nil(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPolicy(t *testing.T) {
	cfg := Default()
	cfg.Llm.OpenAiApiKey = lo.ToPtr("sk-openai")
	cfg.Llm.ForceAtlasCloudForClaude = true
	cfg.Llm.RejectEmptyResponses = true

	policy := cfg.Policy()

	assert.True(t, policy.PreferLocalCli)
	assert.True(t, policy.ForceRemoteForLocalProvider)
	assert.True(t, policy.RejectEmptyResponses)
	assert.Equal(t, lo.ToPtr("sk-openai"), policy.OpenAiApiKey)
	assert.Nil(t, policy.AnthropicApiKey)
}

func TestRoute(t *testing.T) {
	cfg := Default()

	route, err := cfg.Route("claude-3-opus")

	assert.Nil(t, err)
	assert.Equal(t, llmrouter.BackendLocal, route.Backend)

	_, err = cfg.Route("gpt-4")

	assert.True(t, llmrouter.IsKind(err, llmrouter.MissingCredential))

	for _, model := range Models() {
		_, err := cfg.Route(model.Id)

		assert.False(t, llmrouter.IsKind(err, llmrouter.UnsupportedModel), model.Id)
	}
}

func TestSchema(t *testing.T) {
	schema := Schema()

	assert.Equal(t, "Samwise configuration", schema.Title)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, "object", schema.Properties.Value("llm").Type)
	assert.Equal(t, "boolean", schema.Properties.Value("llm").Properties.Value("use_claude_cli").Type)
	assert.Equal(t, "OpenAI API key", schema.Properties.Value("llm").Properties.Value("openai_api_key").Description)
	assert.Contains(t, schema.Required, "selected_model")
	assert.NotContains(t, schema.Required, "prompts_file")
}
