package llmrouter

import (
	"context"
	"sync"
)

// Job is one independent transformation submitted to ProcessAll.
type Job struct {
	Instruction string
	Content     string
	Model       string
}

type AsyncResponse struct {
	Output string
	Error  error
}

// ProcessAll runs independent jobs in parallel, each with its own single
// attempt, and returns their outcomes in the order of the jobs.
//
// At most parallelism jobs are in flight at once, zero or less means no limit.
func ProcessAll(ctx context.Context, client *Client, policy Policy, parallelism int, jobs ...Job) []AsyncResponse {
	var wg sync.WaitGroup

	if parallelism <= 0 || parallelism > len(jobs) {
		parallelism = len(jobs)
	}

	responses := make([]AsyncResponse, len(jobs))
	slots := make(chan struct{}, parallelism)

	for idx, job := range jobs {
		idx, job := idx, job

		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				responses[idx] = AsyncResponse{Error: err}
				return
			}

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				responses[idx] = AsyncResponse{Error: ctx.Err()}
				return
			}

			output, err := client.Process(ctx, job.Instruction, job.Content, job.Model, policy)
			if err != nil {
				responses[idx] = AsyncResponse{Error: err}
				return
			}

			responses[idx] = AsyncResponse{Output: output}
		}()
	}

	wg.Wait()

	return responses
}
