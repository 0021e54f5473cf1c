package http

import (
	"net/http"

	"github.com/bordhockey/statsboard/internal/config"
	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/metrics"
	"github.com/bordhockey/statsboard/internal/view"
)

type Server struct {
	Store          matches.MatchStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Controller     *view.Controller
	Renderer       *view.Renderer
	Router         *http.ServeMux
}
