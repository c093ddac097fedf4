package config

import (
	llmrouter "github.com/checkmarble/llmrouter"
)

type Model struct {
	Id   string
	Name string
}

var models = []Model{
	{"gpt-4", "GPT-4"},
	{"gpt-3.5-turbo", "GPT-3.5 Turbo"},
	{"claude-3-5-sonnet", "Claude 3.5 Sonnet"},
	{"claude-3-opus", "Claude 3 Opus"},
	{"claude-3-haiku", "Claude 3 Haiku"},
	{"openai/gpt-5.1", "GPT-5.1 (AtlasCloud)"},
	{"openai/gpt-5-mini-developer", "GPT-5 Mini Developer (AtlasCloud)"},
	{"deepseek-ai/deepseek-v3.2-speciale", "DeepSeek V3.2 Speciale (AtlasCloud)"},
	{"google/gemini-2.5-flash", "Gemini 2.5 Flash (AtlasCloud)"},
	{"anthropic/claude-3-5-sonnet", "Claude 3.5 Sonnet (AtlasCloud)"},
}

// Models lists the models users can select.
func Models() []Model {
	return append([]Model{}, models...)
}

// Route tells where a model would be sent under the configuration.
func (c Config) Route(model string) (llmrouter.Route, error) {
	return llmrouter.Resolve(model, c.Policy())
}
