package llmrouter

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAdapter struct {
	mock.Mock

	name string
}

func NewMockAdapter(name string) *MockAdapter {
	return &MockAdapter{name: name}
}

func (p *MockAdapter) Name() string {
	return p.name
}

func (p *MockAdapter) Send(ctx context.Context, call Call) (string, error) {
	args := p.Called(ctx, call)

	return args.String(0), args.Error(1)
}
