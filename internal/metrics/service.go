package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statsboard_dataset_loads_total",
			Help: "The total number of dataset load attempts.",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statsboard_dataset_load_failures_total",
			Help: "The total number of dataset load attempts that failed.",
		}),
		Selections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statsboard_player_selections_total",
			Help: "The total number of player selections served.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "statsboard_render_duration_seconds",
			Help:    "The duration of filtering, aggregating and rendering one selection.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statsboard_dataset_size",
			Help: "The number of match records currently loaded.",
		}),
		StartupSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statsboard_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Loads,
		s.LoadFailures,
		s.Selections,
		s.RenderDuration,
		s.DatasetSize,
		s.StartupSeconds,
	)

	return s
}

func (s *Service) IncLoads() {
	s.Loads.Inc()
}

func (s *Service) IncLoadFailures() {
	s.LoadFailures.Inc()
}

func (s *Service) IncSelections() {
	s.Selections.Inc()
}

func (s *Service) ObserveRenderDuration(duration float64) {
	s.RenderDuration.Observe(duration)
}

func (s *Service) SetDatasetSize(count float64) {
	s.DatasetSize.Set(count)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupSeconds.Set(duration)
}
