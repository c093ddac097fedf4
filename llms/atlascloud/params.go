package atlascloud

// ModelParams are the sampling parameters sent for a model.
type ModelParams struct {
	MaxTokens   int64
	Temperature float64
	Options     RequestOptions
}

// RequestOptions are gateway-specific fields, merged at the top level of the
// request body.
type RequestOptions struct {
	RepetitionPenalty float64 `structs:"repetition_penalty,omitempty"`
}

var defaultParams = ModelParams{
	MaxTokens:   2048,
	Temperature: 0.7,
}

var tunedModels = map[string]ModelParams{
	"openai/gpt-5.1": {
		MaxTokens:   128000,
		Temperature: 1.0,
		Options:     RequestOptions{RepetitionPenalty: 1.1},
	},
}
