package anthropic_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/checkmarble/llmrouter/llms/anthropic"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

const anthropicResponse = `{
	"id": "msg_01",
	"type": "message",
	"role": "assistant",
	"model": "claude-3-5-sonnet-20241022",
	"content": [
		{"type": "text", "text": "The improved text."}
	],
	"stop_reason": "end_turn"
}`

func newProvider(t *testing.T, opts ...anthropic.Opt) *anthropic.Anthropic {
	t.Helper()

	client := &http.Client{}
	gock.InterceptClient(client)
	t.Cleanup(func() { gock.RestoreClient(client) })

	provider, err := anthropic.New(append([]anthropic.Opt{anthropic.WithHttpClient(client)}, opts...)...)
	assert.Nil(t, err)

	return provider
}

func call(instruction, content string) llmrouter.Call {
	return llmrouter.Call{
		Request: llmrouter.Request{Instruction: instruction, Content: content},
		Model:   "claude-3-5-sonnet",
		ApiKey:  "anthropickey",
	}
}

func TestAnthropicRequest(t *testing.T) {
	defer gock.Off()

	provider := newProvider(t)

	gock.New("https://api.anthropic.com").
		Post("/v1/messages").
		MatchHeader("x-api-key", "anthropickey").
		MatchHeader("anthropic-version", "2023-06-01").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			body, _ := io.ReadAll(req.Body)

			assert.Equal(t, "claude-3-5-sonnet-20241022", gjson.GetBytes(body, "model").String())
			assert.EqualValues(t, 4096, gjson.GetBytes(body, "max_tokens").Int())
			assert.Equal(t, "Improve the text.", gjson.GetBytes(body, "system.0.text").String())
			assert.EqualValues(t, 1, gjson.GetBytes(body, "messages.#").Int())
			assert.Equal(t, "user", gjson.GetBytes(body, "messages.0.role").String())
			assert.Equal(t, "some text", gjson.GetBytes(body, "messages.0.content.0.text").String())

			return true, nil
		}).
		Reply(http.StatusOK).
		SetHeader("content-type", "application/json").BodyString(anthropicResponse)

	output, err := provider.Send(context.Background(), call("Improve the text.", "some text"))

	assert.False(t, gock.HasUnmatchedRequest())
	assert.Nil(t, err)
	assert.Equal(t, "The improved text.", output)
}

func TestAnthropicRawMode(t *testing.T) {
	defer gock.Off()

	provider := newProvider(t)

	gock.New("https://api.anthropic.com").
		Post("/v1/messages").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			body, _ := io.ReadAll(req.Body)

			assert.False(t, gjson.GetBytes(body, "system").Exists())

			return true, nil
		}).
		Reply(http.StatusOK).
		SetHeader("content-type", "application/json").BodyString(anthropicResponse)

	_, err := provider.Send(context.Background(), call("", "some text"))

	assert.False(t, gock.HasUnmatchedRequest())
	assert.Nil(t, err)
}

func TestAnthropicUnknownModelIsSentAsIs(t *testing.T) {
	defer gock.Off()

	provider := newProvider(t)

	gock.New("https://api.anthropic.com").
		Post("/v1/messages").
		AddMatcher(func(req *http.Request, _ *gock.Request) (bool, error) {
			body, _ := io.ReadAll(req.Body)

			assert.Equal(t, "claude-sonnet-4-5", gjson.GetBytes(body, "model").String())

			return true, nil
		}).
		Reply(http.StatusOK).
		SetHeader("content-type", "application/json").BodyString(anthropicResponse)

	c := call("instruction", "text")
	c.Model = "claude-sonnet-4-5"

	_, err := provider.Send(context.Background(), c)

	assert.False(t, gock.HasUnmatchedRequest())
	assert.Nil(t, err)
}

func TestAnthropicLegacyCompletion(t *testing.T) {
	defer gock.Off()

	provider := newProvider(t)

	gock.New("https://api.anthropic.com").
		Post("/v1/messages").
		Reply(http.StatusOK).
		SetHeader("content-type", "application/json").
		BodyString(`{"type":"completion","completion":"done"}`)

	output, err := provider.Send(context.Background(), call("instruction", "text"))

	assert.Nil(t, err)
	assert.Equal(t, "done", output)
}

func TestAnthropicErrors(t *testing.T) {
	t.Run("non-success status keeps the body", func(t *testing.T) {
		defer gock.Off()

		provider := newProvider(t)

		body := `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`

		gock.New("https://api.anthropic.com").
			Post("/v1/messages").
			Reply(http.StatusUnauthorized).
			SetHeader("content-type", "application/json").
			BodyString(body)

		_, err := provider.Send(context.Background(), call("instruction", "text"))

		var berr *llmrouter.BackendError

		assert.True(t, errors.As(err, &berr))
		assert.Equal(t, llmrouter.NonSuccessStatus, berr.Kind)
		assert.Equal(t, http.StatusUnauthorized, berr.StatusCode)
		assert.Equal(t, body, berr.Body)
		assert.Equal(t, "anthropic", berr.Backend)
	})

	t.Run("no text block", func(t *testing.T) {
		defer gock.Off()

		provider := newProvider(t)

		gock.New("https://api.anthropic.com").
			Post("/v1/messages").
			Reply(http.StatusOK).
			SetHeader("content-type", "application/json").
			BodyString(`{"type":"message","content":[]}`)

		_, err := provider.Send(context.Background(), call("instruction", "text"))

		assert.True(t, llmrouter.IsKind(err, llmrouter.UnparsableResponse))
	})

	t.Run("transport failure", func(t *testing.T) {
		defer gock.Off()

		provider := newProvider(t)

		gock.New("https://api.anthropic.com").
			Post("/v1/messages").
			ReplyError(errors.New("no such host"))

		_, err := provider.Send(context.Background(), call("instruction", "text"))

		assert.True(t, llmrouter.IsKind(err, llmrouter.TransportFailed))
	})
}

func TestModel(t *testing.T) {
	provider, _ := anthropic.New(anthropic.WithModels(map[string]string{"claude-3-haiku": "claude-3-5-haiku-latest"}))

	assert.Equal(t, "claude-3-opus-20240229", provider.Model("claude-3-opus"))
	assert.Equal(t, "claude-3-5-haiku-latest", provider.Model("claude-3-haiku"))
	assert.Equal(t, "claude-3-haiku-20240307", anthropic.DefaultModels["claude-3-haiku"])
	assert.Equal(t, "anthropic/claude-x", provider.Model("anthropic/claude-x"))
}
