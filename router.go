package llmrouter

import (
	"strings"

	"github.com/samber/lo"
)

// Backend identifies one of the backend integrations a model can be routed to.
type Backend int

const (
	// BackendLocal is the local command-line executable of the local-capable
	// provider.
	BackendLocal Backend = iota
	// BackendGateway is the aggregation gateway fronting several vendors.
	BackendGateway
	// BackendAnthropic is the first-party API of the local-capable provider.
	BackendAnthropic
	// BackendOpenAi is the first-party API of the other major provider.
	BackendOpenAi
)

func (b Backend) String() string {
	switch b {
	case BackendLocal:
		return "claude-cli"
	case BackendGateway:
		return "atlascloud"
	case BackendAnthropic:
		return "anthropic"
	case BackendOpenAi:
		return "openai"
	default:
		return "unknown"
	}
}

const (
	namespaceSeparator = "/"

	localProviderPrefix          = "claude"
	localProviderNamespacePrefix = "anthropic/" + localProviderPrefix
	otherProviderPrefix          = "gpt"
)

// Names of the credentials, as reported in MissingCredential errors.
const (
	CredentialAtlasCloud = "AtlasCloud API key"
	CredentialAnthropic  = "Anthropic API key"
	CredentialOpenAi     = "OpenAI API key"
)

// gatewayModels are the fully-qualified model names always served by the
// gateway.
var gatewayModels = []string{
	"openai/gpt-5.1",
	"openai/gpt-5-mini-developer",
	"deepseek-ai/deepseek-v3.2-speciale",
	"google/gemini-2.5-flash",
}

// Route is the outcome of a routing decision.
type Route struct {
	Backend Backend
	Model   string
	// ApiKey is the credential to use for the backend, empty for BackendLocal.
	ApiKey string
}

type rule struct {
	matches func(model string) bool
	route   func(model string, policy Policy) (Route, error)
}

// rules is evaluated in order and the first match wins, because identifier
// shapes overlap (every namespaced `anthropic/claude-*` id also "contains a
// slash").
//
// The priority between the local executable and the gateway for namespaced
// identifiers of the local-capable provider has changed several times and is
// driven by the policy flags. Treat it as configuration-sensitive.
var rules = []rule{
	{
		matches: func(model string) bool {
			return strings.Contains(model, namespaceSeparator) || lo.Contains(gatewayModels, model)
		},
		route: func(model string, policy Policy) (Route, error) {
			if strings.HasPrefix(model, localProviderNamespacePrefix) && policy.PreferLocalCli && !policy.ForceRemoteForLocalProvider {
				return Route{Backend: BackendLocal, Model: model}, nil
			}

			apiKey, ok := key(policy.AtlasCloudApiKey)
			if !ok {
				return Route{}, NewMissingCredentialError(BackendGateway.String(), CredentialAtlasCloud)
			}

			return Route{Backend: BackendGateway, Model: model, ApiKey: apiKey}, nil
		},
	},
	{
		matches: func(model string) bool {
			return strings.HasPrefix(model, localProviderPrefix)
		},
		route: func(model string, policy Policy) (Route, error) {
			if policy.PreferLocalCli {
				return Route{Backend: BackendLocal, Model: model}, nil
			}

			apiKey, ok := key(policy.AnthropicApiKey)
			if !ok {
				return Route{}, NewMissingCredentialError(BackendAnthropic.String(), CredentialAnthropic)
			}

			return Route{Backend: BackendAnthropic, Model: model, ApiKey: apiKey}, nil
		},
	},
	{
		matches: func(model string) bool {
			return strings.HasPrefix(model, otherProviderPrefix)
		},
		route: func(model string, policy Policy) (Route, error) {
			apiKey, ok := key(policy.OpenAiApiKey)
			if !ok {
				return Route{}, NewMissingCredentialError(BackendOpenAi.String(), CredentialOpenAi)
			}

			return Route{Backend: BackendOpenAi, Model: model, ApiKey: apiKey}, nil
		},
	},
}

// Resolve maps a model identifier and a policy to exactly one backend.
//
// It is a pure function: it performs no I/O and does not look at anything but
// its arguments. Credential checks happen here, so a missing key is reported
// before any process or HTTP call is attempted.
func Resolve(model string, policy Policy) (Route, error) {
	for _, r := range rules {
		if r.matches(model) {
			return r.route(model, policy)
		}
	}

	return Route{}, NewUnsupportedModelError(model)
}
