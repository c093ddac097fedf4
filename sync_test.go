package llmrouter

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func contentIs(content string) any {
	return mock.MatchedBy(func(call Call) bool { return call.Content == content })
}

func TestProcessAll(t *testing.T) {
	e := NewStatusError("openai", 500, "boom")

	p1 := NewMockAdapter("openai")
	p1.On("Send", mock.Anything, contentIs("first")).Return("FIRST", nil).After(300 * time.Millisecond).Once()
	p1.On("Send", mock.Anything, contentIs("second")).Return("", e).After(100 * time.Millisecond).Once()
	p1.On("Send", mock.Anything, contentIs("third")).Return("THIRD", nil).Once()

	client, _ := New(WithAdapter(BackendOpenAi, p1))

	responses := ProcessAll(context.Background(), client, Policy{OpenAiApiKey: lo.ToPtr("k")}, 0,
		Job{Instruction: "upper", Content: "first", Model: "gpt-4"},
		Job{Instruction: "upper", Content: "second", Model: "gpt-4"},
		Job{Instruction: "upper", Content: "third", Model: "gpt-4"},
		Job{Instruction: "upper", Content: "fourth", Model: "llama"})

	assert.Len(t, responses, 4)

	assert.Nil(t, responses[0].Error)
	assert.Equal(t, "FIRST", responses[0].Output)
	assert.True(t, errors.Is(responses[1].Error, e))
	assert.Nil(t, responses[2].Error)
	assert.Equal(t, "THIRD", responses[2].Output)
	assert.True(t, IsKind(responses[3].Error, UnsupportedModel))

	p1.AssertExpectations(t)
}

func TestProcessAllParallelism(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32

	p1 := NewMockAdapter("openai")
	p1.On("Send", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)

			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}

			time.Sleep(50 * time.Millisecond)
		}).
		Return("ok", nil)

	client, _ := New(WithAdapter(BackendOpenAi, p1))

	jobs := lo.Times(8, func(int) Job {
		return Job{Instruction: "instruction", Content: "text", Model: "gpt-4"}
	})

	responses := ProcessAll(context.Background(), client, Policy{OpenAiApiKey: lo.ToPtr("k")}, 2, jobs...)

	assert.Len(t, responses, 8)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))

	for _, resp := range responses {
		assert.Nil(t, resp.Error)
		assert.Equal(t, "ok", resp.Output)
	}
}

func TestProcessAllCancelled(t *testing.T) {
	p1 := NewMockAdapter("openai")

	client, _ := New(WithAdapter(BackendOpenAi, p1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	responses := ProcessAll(ctx, client, Policy{OpenAiApiKey: lo.ToPtr("k")}, 1,
		Job{Instruction: "instruction", Content: "text", Model: "gpt-4"},
		Job{Instruction: "instruction", Content: "text", Model: "gpt-4"})

	for _, resp := range responses {
		assert.ErrorIs(t, resp.Error, context.Canceled)
	}

	p1.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
