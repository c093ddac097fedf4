package openai

import (
	"context"
	"net/http"
	"time"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/checkmarble/llmrouter/internal/transport"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseUrl = "https://api.openai.com/v1"

	defaultMaxTokens   = 4096
	defaultTemperature = 0.7
)

// OpenAi calls an OpenAI-compatible Chat Completions endpoint.
//
// Used as is, it talks to OpenAI's first-party API. Other adapters wrap it and
// customize the request through RequestHookFunc.
type OpenAi struct {
	name       string
	baseUrl    string
	httpClient *http.Client
	timeout    time.Duration
	models     map[string]string

	omitEmptyInstruction bool

	// RequestHookFunc is called with the fully built request parameters and
	// can adapt them to a specific provider.
	RequestHookFunc func(call llmrouter.Call, cfg *openai.ChatCompletionNewParams) error
}

func New(opts ...Opt) (*OpenAi, error) {
	llm := OpenAi{
		name:    "openai",
		baseUrl: DefaultBaseUrl,
		timeout: transport.DefaultTimeout,
		models:  map[string]string{},
	}

	for _, opt := range opts {
		opt(&llm)
	}

	if llm.httpClient == nil {
		llm.httpClient = transport.NewHttpClient(llm.timeout)
	}

	return &llm, nil
}

func (p *OpenAi) Name() string {
	return p.name
}

// Model translates a user-facing model identifier to the name the API
// accepts.
func (p *OpenAi) Model(model string) string {
	return lo.ValueOr(p.models, model, model)
}

func (p *OpenAi) Send(ctx context.Context, call llmrouter.Call) (string, error) {
	recorder := transport.NewRecorder(p.name)

	cfg, err := p.adaptRequest(call)
	if err != nil {
		return "", err
	}

	client := openai.NewClient(
		option.WithBaseURL(p.baseUrl),
		option.WithAPIKey(call.ApiKey),
		option.WithHTTPClient(p.httpClient),
		option.WithRequestTimeout(p.timeout),
		option.WithMaxRetries(0),
		option.WithMiddleware(recorder.Middleware),
	)

	response, err := client.Chat.Completions.New(ctx, cfg)
	if err != nil {
		return "", recorder.Classify(err)
	}

	text, ok := extractText(response)
	if !ok {
		return "", recorder.Unparsable(nil)
	}

	return text, nil
}

func (p *OpenAi) adaptRequest(call llmrouter.Call) (openai.ChatCompletionNewParams, error) {
	cfg := openai.ChatCompletionNewParams{
		Model:       p.Model(call.Model),
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, 2),
		MaxTokens:   openai.Int(defaultMaxTokens),
		Temperature: openai.Float(defaultTemperature),
	}

	if !call.IsRaw() || !p.omitEmptyInstruction {
		cfg.Messages = append(cfg.Messages, openai.SystemMessage(call.Instruction))
	}

	cfg.Messages = append(cfg.Messages, openai.UserMessage(call.Content))

	if p.RequestHookFunc != nil {
		if err := p.RequestHookFunc(call, &cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// extractText reads the completion text, from the Chat Completions shape
// (`choices[0].message.content`) or, failing that, from the Responses shape
// (`output[0].content[0].text`) some compatible APIs answer with.
func extractText(response *openai.ChatCompletion) (string, bool) {
	if len(response.Choices) > 0 && response.Choices[0].Message.JSON.Content.Valid() {
		return response.Choices[0].Message.Content, true
	}

	output, ok := response.JSON.ExtraFields["output"]
	if !ok {
		return "", false
	}

	text := gjson.Get(output.Raw(), "0.content.0.text")
	if text.Type != gjson.String {
		return "", false
	}

	return text.String(), true
}
