// Package atlascloud talks to the AtlasCloud gateway, an OpenAI-compatible API
// fronting models from several vendors under namespaced identifiers such as
// `openai/gpt-5.1` or `deepseek-ai/deepseek-v3.2-speciale`.
package atlascloud

import (
	llmrouter "github.com/checkmarble/llmrouter"
	base "github.com/checkmarble/llmrouter/llms/openai"
	"github.com/fatih/structs"
	"github.com/openai/openai-go"
	"github.com/samber/lo"
)

const DefaultBaseUrl = "https://api.atlascloud.ai/v1"

type AtlasCloud struct {
	*base.OpenAi

	params map[string]ModelParams
}

func New(openAiOpts ...base.Opt) (*AtlasCloud, error) {
	oai, err := base.New(
		base.WithName(llmrouter.BackendGateway.String()),
		base.WithBaseUrl(DefaultBaseUrl),
		base.WithOmitEmptyInstruction(),
	)

	if err != nil {
		return nil, err
	}

	for _, opt := range openAiOpts {
		opt(oai)
	}

	llm := AtlasCloud{
		OpenAi: oai,
		params: tunedModels,
	}

	llm.RequestHookFunc = llm.transformRequest

	return &llm, nil
}

// Params returns the sampling parameters sent for a model.
func (p *AtlasCloud) Params(model string) ModelParams {
	return lo.ValueOr(p.params, model, defaultParams)
}

func (p *AtlasCloud) transformRequest(call llmrouter.Call, cfg *openai.ChatCompletionNewParams) error {
	params := p.Params(call.Model)

	cfg.MaxTokens = openai.Int(params.MaxTokens)
	cfg.Temperature = openai.Float(params.Temperature)

	if extras := structs.Map(params.Options); len(extras) > 0 {
		cfg.SetExtraFields(extras)
	}

	return nil
}
