package llmrouter

// Request is the unified input every backend receives, before being adapted to
// its own wire format.
type Request struct {
	// Instruction is the system prompt. An empty instruction is the raw
	// passthrough mode: no instruction is sent at all.
	Instruction string
	// Content is the text to transform. It is never modified by the client.
	Content string
}

// IsRaw reports whether the request carries no instruction.
func (r Request) IsRaw() bool {
	return r.Instruction == ""
}

// Call is what an adapter receives for one invocation: the unified request,
// the model identifier selected by the user, and the credential the router
// picked for the backend (empty for the local executable).
type Call struct {
	Request

	Model  string
	ApiKey string
}
