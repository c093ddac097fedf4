package openai

import (
	"net/http"
	"time"
)

type Opt func(*OpenAi)

// WithBaseUrl sets the URL at which the OpenAI-compatible API is available.
//
// If not specified, will use OpenAI's API.
func WithBaseUrl(url string) Opt {
	return func(p *OpenAi) {
		p.baseUrl = url
	}
}

// WithName sets the name reported in errors.
func WithName(name string) Opt {
	return func(p *OpenAi) {
		p.name = name
	}
}

// WithHttpClient sets the HTTP client used for requests. Its own timeout still
// applies.
func WithHttpClient(client *http.Client) Opt {
	return func(p *OpenAi) {
		p.httpClient = client
	}
}

// WithTimeout bounds the duration of a request.
func WithTimeout(timeout time.Duration) Opt {
	return func(p *OpenAi) {
		p.timeout = timeout
	}
}

// WithModels adds model name translations, from the identifier selected by
// the user to the name the API expects.
func WithModels(models map[string]string) Opt {
	return func(p *OpenAi) {
		for from, to := range models {
			p.models[from] = to
		}
	}
}

// WithOmitEmptyInstruction does not send a system message at all when the
// instruction is empty.
func WithOmitEmptyInstruction() Opt {
	return func(p *OpenAi) {
		p.omitEmptyInstruction = true
	}
}
