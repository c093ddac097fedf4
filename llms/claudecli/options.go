package claudecli

type Opt func(*ClaudeCli)

// WithCommand sets the command used to start the executable, `claude` on the
// PATH by default.
func WithCommand(command string) Opt {
	return func(p *ClaudeCli) {
		p.command = command
	}
}

// WithModel asks the executable for a specific model. The executable's own
// default is used when empty.
func WithModel(model string) Opt {
	return func(p *ClaudeCli) {
		p.model = model
	}
}
