package llmrouter

import (
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Client is the entrypoint used by applications to transform text. It resolves
// which backend serves a model, calls it once, and returns its output or a
// *BackendError.
//
// A Client only holds the adapters registered at construction and can be
// shared by concurrent callers.
type Client struct {
	adapters map[Backend]Adapter
	logger   *slog.Logger
}

// New creates a new Client with the given options.
//
// Example usage:
//
//	client, err := llmrouter.New(
//		llmrouter.WithAdapter(llmrouter.BackendLocal, claudecli.New()),
//		llmrouter.WithAdapter(llmrouter.BackendOpenAi, openai.New()),
//	)
func New(opts ...clientOption) (*Client, error) {
	client := Client{
		adapters: make(map[Backend]Adapter),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(&client)
	}

	for backend, adapter := range client.adapters {
		if adapter == nil {
			return nil, errors.Newf("nil adapter registered for backend '%s'", backend)
		}
	}

	return &client, nil
}

// Adapter returns the adapter registered for a backend.
func (c *Client) Adapter(backend Backend) (Adapter, error) {
	adapter, ok := c.adapters[backend]
	if !ok {
		return nil, errors.Newf("no adapter registered for backend '%s'", backend)
	}

	return adapter, nil
}

// Process transforms content according to instruction, using the backend the
// model is routed to under the given policy.
//
// The adapter output is returned unchanged. Exactly one attempt is made: a
// failure is final and never falls back to another backend.
func (c *Client) Process(ctx context.Context, instruction, content, model string, policy Policy) (string, error) {
	route, err := Resolve(model, policy)
	if err != nil {
		c.logger.DebugContext(ctx, "could not route model", "model", model, "error", err)

		return "", err
	}

	adapter, err := c.Adapter(route.Backend)
	if err != nil {
		return "", err
	}

	c.logger.DebugContext(ctx, "routing request",
		"model", model,
		"backend", route.Backend.String(),
		"adapter", adapter.Name(),
		"instruction_len", len(instruction),
		"content_len", len(content))

	call := Call{
		Request: Request{Instruction: instruction, Content: content},
		Model:   route.Model,
		ApiKey:  route.ApiKey,
	}

	output, err := adapter.Send(ctx, call)
	if err != nil {
		c.logger.DebugContext(ctx, "backend call failed", "backend", route.Backend.String(), "error", err)

		return "", err
	}

	if output == "" && policy.RejectEmptyResponses {
		return "", newEmptyResponseError(adapter.Name())
	}

	c.logger.DebugContext(ctx, "backend call succeeded", "backend", route.Backend.String(), "output_len", len(output))

	return output, nil
}
