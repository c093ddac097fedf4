package anthropic

import (
	"net/http"
	"time"
)

type Opt func(*Anthropic)

// WithBaseUrl sets the URL at which the Messages API is available.
func WithBaseUrl(url string) Opt {
	return func(p *Anthropic) {
		p.baseUrl = url
	}
}

func WithHttpClient(client *http.Client) Opt {
	return func(p *Anthropic) {
		p.httpClient = client
	}
}

func WithTimeout(timeout time.Duration) Opt {
	return func(p *Anthropic) {
		p.timeout = timeout
	}
}

func WithMaxTokens(maxTokens int64) Opt {
	return func(p *Anthropic) {
		p.maxTokens = maxTokens
	}
}

// WithModels adds or overrides model name translations.
func WithModels(models map[string]string) Opt {
	return func(p *Anthropic) {
		for from, to := range models {
			p.models[from] = to
		}
	}
}
