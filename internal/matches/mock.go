package matches

import "sync"

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ReplaceAllFunc func(records []Record) error
	AllFunc        func() ([]Record, error)
	ForPlayerFunc  func(name string) ([]Record, error)
	CountFunc      func() (int, error)
	ClearFunc      func()

	// Call records
	ReplaceAllCalls [][]Record
	ForPlayerCalls  []string
	AllCalls        int
	CountCalls      int
	ClearCalls      int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ReplaceAll(records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceAllCalls = append(m.ReplaceAllCalls, records)
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(records)
	}
	return nil
}

func (m *MockStore) All() ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AllCalls++
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return []Record{}, nil
}

func (m *MockStore) ForPlayer(name string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ForPlayerCalls = append(m.ForPlayerCalls, name)
	if m.ForPlayerFunc != nil {
		return m.ForPlayerFunc(name)
	}
	return []Record{}, nil
}

func (m *MockStore) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CountCalls++
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return 0, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
