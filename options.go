package llmrouter

import "log/slog"

type clientOption func(*Client)

// WithAdapter registers the adapter serving a backend.
func WithAdapter(backend Backend, adapter Adapter) clientOption {
	return func(c *Client) {
		c.adapters[backend] = adapter
	}
}

// WithLogger sets the logger used to trace routing decisions. Nothing is logged
// by default.
func WithLogger(logger *slog.Logger) clientOption {
	return func(c *Client) {
		c.logger = logger
	}
}
