package llmrouter

// Policy holds the user preferences driving backend selection. It is supplied
// on every call, the client never keeps it around.
type Policy struct {
	// PreferLocalCli routes models of the local-capable provider to the local
	// executable.
	PreferLocalCli bool
	// ForceRemoteForLocalProvider sends namespaced identifiers of the
	// local-capable provider (`anthropic/...`) to the gateway even when
	// PreferLocalCli is set.
	ForceRemoteForLocalProvider bool

	AnthropicApiKey  *string
	AtlasCloudApiKey *string
	OpenAiApiKey     *string

	// RejectEmptyResponses turns a successful but empty output into an
	// EmptyResponse error. Off by default, an empty output is a success.
	RejectEmptyResponses bool
}

// key returns the credential if it is set and not blank.
func key(k *string) (string, bool) {
	if k == nil || *k == "" {
		return "", false
	}

	return *k, true
}
