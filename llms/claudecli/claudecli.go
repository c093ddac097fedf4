// Package claudecli runs text transformations through the locally installed
// `claude` command-line executable.
package claudecli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
)

const (
	DefaultCommand = "claude"

	// InstallHint is attached to ProcessLaunchFailed errors.
	InstallHint = "Make sure Claude CLI is installed (brew install claude)"

	instructionSuffix = "\n\nIMPORTANT: Return ONLY the processed text. Do not include any explanations, meta-commentary, questions, or conversational text. Just return the result directly."

	fence = "```"
)

type ClaudeCli struct {
	command string
	model   string

	executable string
	baseArgs   []string
}

// New creates the adapter. The command is split like a shell would, so it
// can carry its own arguments (`npx @anthropic-ai/claude-code`).
func New(opts ...Opt) (*ClaudeCli, error) {
	llm := ClaudeCli{
		command: DefaultCommand,
	}

	for _, opt := range opts {
		opt(&llm)
	}

	words, err := shellquote.Split(llm.command)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid command '%s'", llm.command)
	}
	if len(words) == 0 {
		return nil, errors.New("empty command")
	}

	llm.executable = words[0]
	llm.baseArgs = words[1:]

	return &llm, nil
}

func (*ClaudeCli) Name() string {
	return llmrouter.BackendLocal.String()
}

// Args returns the arguments the executable is started with for a call.
func (p *ClaudeCli) Args(call llmrouter.Call) []string {
	args := append([]string{}, p.baseArgs...)

	if p.model != "" {
		args = append(args, "--model", p.model)
	}

	args = append(args, "-p", call.Content)

	if !call.IsRaw() {
		args = append(args, "--system-prompt", call.Instruction+instructionSuffix)
	}

	return args
}

// CommandLine renders the command for a call, quoted for a POSIX shell.
func (p *ClaudeCli) CommandLine(call llmrouter.Call) string {
	return shellquote.Join(append([]string{p.executable}, p.Args(call)...)...)
}

func (p *ClaudeCli) Send(ctx context.Context, call llmrouter.Call) (string, error) {
	stdout, err := p.run(ctx, p.Args(call)...)
	if err != nil {
		return "", err
	}

	return StripFence(stdout), nil
}

// Available reports whether the executable can be started, by asking for its
// version.
func (p *ClaudeCli) Available(ctx context.Context) (string, error) {
	stdout, err := p.run(ctx, append(append([]string{}, p.baseArgs...), "--version")...)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(stdout), nil
}

func (p *ClaudeCli) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.executable, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError

		switch {
		case errors.As(err, &exitErr):
			return "", llmrouter.NewExitError(p.Name(), strings.TrimSpace(stderr.String()), err)
		case ctx.Err() != nil:
			return "", llmrouter.NewExitError(p.Name(), strings.TrimSpace(stderr.String()), ctx.Err())
		default:
			return "", llmrouter.NewLaunchError(p.Name(), err, InstallHint)
		}
	}

	return stdout.String(), nil
}

// StripFence trims the output and removes the triple-backtick fence the model
// sometimes wraps it in. Applying it to its own result changes nothing.
func StripFence(output string) string {
	for {
		stripped := strings.TrimSpace(output)
		stripped = strings.TrimPrefix(stripped, fence)
		stripped = strings.TrimSuffix(stripped, fence)
		stripped = strings.TrimSpace(stripped)

		if stripped == output {
			return stripped
		}

		output = stripped
	}
}
