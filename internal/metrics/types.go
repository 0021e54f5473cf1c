package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Loads          prometheus.Counter
	LoadFailures   prometheus.Counter
	Selections     prometheus.Counter
	RenderDuration prometheus.Histogram
	DatasetSize    prometheus.Gauge
	StartupSeconds prometheus.Gauge
}
