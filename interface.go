package llmrouter

import (
	"context"
)

// Adapter is a backend integration: it turns a unified request into a
// backend-specific call and normalizes the outcome into text or a
// *BackendError.
//
// Adapters must not keep per-call state, the same value can serve concurrent
// calls.
type Adapter interface {
	Name() string
	Send(ctx context.Context, call Call) (string, error)
}
