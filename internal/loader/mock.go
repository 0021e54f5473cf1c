package loader

import (
	"context"
	"sync"

	"github.com/bordhockey/statsboard/internal/matches"
)

// MockLoader is a mock implementation of the Loader interface for testing.
// It is safe for concurrent use.
type MockLoader struct {
	mu sync.Mutex

	// Spies for method calls
	LoadFunc func(ctx context.Context) ([]matches.Record, error)

	// Call records
	LoadCalls int
}

// NewMock creates a new mock instance.
func NewMock() *MockLoader {
	return &MockLoader{}
}

func (m *MockLoader) Load(ctx context.Context) ([]matches.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return []matches.Record{}, nil
}
