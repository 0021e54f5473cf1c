package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLoads()
	IncLoadFailures()
	IncSelections()
	ObserveRenderDuration(duration float64)
	SetDatasetSize(count float64)
	SetStartupTime(duration float64)
}
