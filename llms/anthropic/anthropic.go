// Package anthropic calls Anthropic's first-party Messages API.
package anthropic

import (
	"context"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/checkmarble/llmrouter/internal/transport"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseUrl = "https://api.anthropic.com/"

	defaultMaxTokens = 4096
)

// DefaultModels maps the short model names shown to users to the dated
// identifiers the API accepts. Unknown names are sent as is.
var DefaultModels = map[string]string{
	"claude-3-5-sonnet": "claude-3-5-sonnet-20241022",
	"claude-3-opus":     "claude-3-opus-20240229",
	"claude-3-haiku":    "claude-3-haiku-20240307",
}

type Anthropic struct {
	baseUrl    string
	httpClient *http.Client
	timeout    time.Duration
	maxTokens  int64
	models     map[string]string
}

func New(opts ...Opt) (*Anthropic, error) {
	llm := Anthropic{
		baseUrl:   DefaultBaseUrl,
		timeout:   transport.DefaultTimeout,
		maxTokens: defaultMaxTokens,
		models:    lo.Assign(DefaultModels),
	}

	for _, opt := range opts {
		opt(&llm)
	}

	if llm.httpClient == nil {
		llm.httpClient = transport.NewHttpClient(llm.timeout)
	}

	return &llm, nil
}

func (*Anthropic) Name() string {
	return llmrouter.BackendAnthropic.String()
}

// Model translates a user-facing model identifier to the name the API
// accepts.
func (p *Anthropic) Model(model string) string {
	return lo.ValueOr(p.models, model, model)
}

func (p *Anthropic) Send(ctx context.Context, call llmrouter.Call) (string, error) {
	recorder := transport.NewRecorder(p.Name())

	client := anthropic.NewClient(
		option.WithBaseURL(p.baseUrl),
		option.WithAPIKey(call.ApiKey),
		option.WithHTTPClient(p.httpClient),
		option.WithRequestTimeout(p.timeout),
		option.WithMaxRetries(0),
		option.WithMiddleware(recorder.Middleware),
	)

	response, err := client.Messages.New(ctx, p.adaptRequest(call))
	if err != nil {
		return "", recorder.Classify(err)
	}

	text, ok := extractText(response)
	if !ok {
		return "", recorder.Unparsable(nil)
	}

	return text, nil
}

func (p *Anthropic) adaptRequest(call llmrouter.Call) anthropic.MessageNewParams {
	cfg := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.Model(call.Model)),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(call.Content)),
		},
	}

	if !call.IsRaw() {
		cfg.System = []anthropic.TextBlockParam{{Text: call.Instruction}}
	}

	return cfg
}

// extractText reads the first text block of a message, or the `completion`
// field of the legacy text completion shape.
func extractText(response *anthropic.Message) (string, bool) {
	block, ok := lo.Find(response.Content, func(block anthropic.ContentBlockUnion) bool {
		return block.Type == "text"
	})
	if ok {
		return block.Text, true
	}

	completion, ok := response.JSON.ExtraFields["completion"]
	if !ok {
		return "", false
	}

	text := gjson.Parse(completion.Raw())
	if text.Type != gjson.String {
		return "", false
	}

	return text.String(), true
}
