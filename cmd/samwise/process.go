package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/checkmarble/llmrouter/catalog"
	"github.com/checkmarble/llmrouter/llms/claudecli"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process [text]",
	Short: "Apply a prompt to a text",
	Long:  "Apply a prompt to the text given as arguments, or read from the standard input, and print the result.",
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringP("prompt", "p", "fix_grammar", "Prompt to apply (see `samwise prompts`)")
	processCmd.Flags().Bool("fallback", false, "On failure, print a report with the original text instead of failing")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	promptId, _ := cmd.Flags().GetString("prompt")
	fallback, _ := cmd.Flags().GetBool("fallback")

	a, err := newApp()
	if err != nil {
		return err
	}

	prompt, err := a.prompts.Get(promptId)
	if err != nil {
		return err
	}

	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	model := a.model()

	a.logger.Info("applying prompt", "prompt", prompt.Id, "model", model, "text_len", len(text))

	req := prompt.Request(text)

	output, err := a.client.Process(cmd.Context(), req.Instruction, req.Content, model, a.config.Policy())
	if err != nil {
		if fallback {
			fmt.Fprintln(cmd.OutOrStdout(), fallbackReport(err, prompt, text))

			return nil
		}

		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)

	return nil
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	text, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "could not read standard input")
	}

	return strings.TrimRight(string(text), "\n"), nil
}

// fallbackReport is printed instead of the result when processing fails, so
// the user keeps the original text along with the steps to fix the setup.
func fallbackReport(err error, prompt catalog.Prompt, text string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Error: %s]\n\n", err)
	fmt.Fprintf(&b, "Applied: %s\n\n", prompt.Name)
	fmt.Fprintf(&b, "Original text:\n%s\n\n", text)
	fmt.Fprintf(&b, "Prompt:\n%s\n\n", prompt.SystemPrompt)
	b.WriteString("ℹ️ To fix this:\n")
	fmt.Fprintf(&b, "- If using Claude: %s\n", claudecli.InstallHint)
	b.WriteString("- If using OpenAI: Add your API key to the configuration (samwise config path)\n")
	b.WriteString("- Check the configuration to set up LLM authentication")

	return b.String()
}
