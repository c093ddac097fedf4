package main

import (
	"bufio"

	llmrouter "github.com/checkmarble/llmrouter"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/simonfrey/jsonl"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Apply a prompt to every line of the standard input",
	Long:  "Apply a prompt to every non-empty line of the standard input, in parallel, and write one JSON record per line with the result or the error.",
	Args:  cobra.NoArgs,
	RunE:  runBatch,
}

type batchRecord struct {
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

func init() {
	batchCmd.Flags().StringP("prompt", "p", "fix_grammar", "Prompt to apply (see `samwise prompts`)")
	batchCmd.Flags().IntP("parallelism", "j", 4, "Maximum number of texts processed at once")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	promptId, _ := cmd.Flags().GetString("prompt")
	parallelism, _ := cmd.Flags().GetInt("parallelism")

	a, err := newApp()
	if err != nil {
		return err
	}

	prompt, err := a.prompts.Get(promptId)
	if err != nil {
		return err
	}

	inputs := make([]string, 0)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not read standard input")
	}

	model := a.model()

	jobs := lo.Map(inputs, func(input string, _ int) llmrouter.Job {
		return llmrouter.Job{Instruction: prompt.SystemPrompt, Content: input, Model: model}
	})

	a.logger.Info("processing batch", "prompt", prompt.Id, "model", model, "jobs", len(jobs), "parallelism", parallelism)

	responses := llmrouter.ProcessAll(cmd.Context(), a.client, a.config.Policy(), parallelism, jobs...)

	w := jsonl.NewWriter(cmd.OutOrStdout())
	failed := 0

	for idx, resp := range responses {
		record := batchRecord{Index: idx, Input: inputs[idx], Output: resp.Output}

		if resp.Error != nil {
			record.Error = resp.Error.Error()
			failed++
		}

		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "could not write result")
		}
	}

	if failed > 0 {
		a.logger.Warn("some texts could not be processed", "failed", failed, "total", len(responses))
	}

	return nil
}
