package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	loads           int
	loadFailures    int
	selections      int
	renderDurations []float64
	datasetSize     float64
	startupTime     float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		renderDurations: make([]float64, 0),
	}
}

func (m *Mock) IncLoads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
}

func (m *Mock) IncLoadFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadFailures++
}

func (m *Mock) IncSelections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selections++
}

func (m *Mock) ObserveRenderDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderDurations = append(m.renderDurations, duration)
}

func (m *Mock) SetDatasetSize(count float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasetSize = count
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Loads returns the number of recorded load attempts.
func (m *Mock) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// LoadFailures returns the number of recorded load failures.
func (m *Mock) LoadFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadFailures
}

// Selections returns the number of recorded selections.
func (m *Mock) Selections() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selections
}

// DatasetSize returns the last recorded dataset size.
func (m *Mock) DatasetSize() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.datasetSize
}
