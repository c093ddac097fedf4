// Package transport holds the HTTP plumbing shared by the REST adapters.
//
// The adapters use vendor SDKs to build requests and decode responses, but the
// SDKs' own error types drop details we need (the raw body of a failed call,
// the status of a response that could not be decoded). A Recorder is installed
// as an SDK middleware for a single call and keeps those details.
package transport

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/cockroachdb/errors"
)

// DefaultTimeout bounds a whole round-trip to a remote backend.
const DefaultTimeout = 120 * time.Second

// NewHttpClient creates the HTTP client used by REST adapters when none is
// provided.
func NewHttpClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: 10 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
		Timeout: timeout,
	}
}

// Recorder captures the outcome of one HTTP exchange. It must not be reused
// across calls.
type Recorder struct {
	backend string

	StatusCode int
	Body       []byte
}

func NewRecorder(backend string) *Recorder {
	return &Recorder{backend: backend}
}

// Middleware has the shape expected by the OpenAI and Anthropic SDKs
// (`option.Middleware` in both).
//
// Transport failures and non-2xx answers are turned into *BackendError values
// here, so the SDK hands them back untouched. Successful bodies are recorded
// and given back to the SDK for decoding.
func (r *Recorder) Middleware(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	resp, err := next(req)
	if err != nil {
		return nil, llmrouter.NewTransportError(r.backend, err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	r.StatusCode = resp.StatusCode
	r.Body = body

	if err != nil {
		return nil, llmrouter.NewTransportError(r.backend, errors.Wrap(err, "could not read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, llmrouter.NewStatusError(r.backend, resp.StatusCode, string(body))
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, nil
}

// Classify turns an error returned by an SDK call into a *BackendError.
//
// Errors produced by the middleware are returned as-is. Context expiry is a
// transport failure. Any other error after a 2xx answer was recorded comes
// from decoding the body, which makes the response unparsable.
func (r *Recorder) Classify(err error) error {
	if err == nil {
		return nil
	}

	var berr *llmrouter.BackendError

	if errors.As(err, &berr) {
		return berr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return llmrouter.NewTransportError(r.backend, err)
	}

	if r.StatusCode != 0 {
		return r.Unparsable(err)
	}

	return llmrouter.NewTransportError(r.backend, err)
}

// Unparsable reports the recorded answer as not matching any known shape.
func (r *Recorder) Unparsable(cause error) error {
	return llmrouter.NewUnparsableError(r.backend, r.StatusCode, string(r.Body), cause)
}
