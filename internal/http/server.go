package http

import (
	"net/http"

	"github.com/bordhockey/statsboard/internal/config"
	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/metrics"
	"github.com/bordhockey/statsboard/internal/view"
)

func NewServer(store matches.MatchStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, controller *view.Controller, renderer *view.Renderer) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Controller:     controller,
		Renderer:       renderer,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/api/players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("/api/matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("/api/summary", Chain(s.PlayerSummaryHandler(), paramsMiddleware))
	s.Router.Handle("/", Chain(s.ViewHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
