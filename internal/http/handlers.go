package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/stats"
	"github.com/bordhockey/statsboard/internal/view"
	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ViewHandler serves the stats page. The selected player arrives as the
// 'player' query parameter; an empty selection renders the initial prompt
// state.
func (s *Server) ViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		player := r.URL.Query().Get("player")
		state := s.Controller.Select(s.Controller.InitialState(), player)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.Renderer.Render(w, state); err != nil {
			log.Error("Failed to render page", "error", err, "requestID", requestIDFromContext(r))
		}
	}
}

// ListPlayersHandler serves the sorted, de-duplicated player index.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Controller.LoadFailed() {
			http.Error(w, view.MsgLoadError, http.StatusServiceUnavailable)
			return
		}

		records, err := s.Store.All()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats.PlayerIndex(records)); err != nil {
			log.Error("Failed to encode players to JSON", "error", err)
		}
	}
}

// ListMatchesHandler serves match records in source order, optionally
// filtered to one player.
func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Controller.LoadFailed() {
			http.Error(w, view.MsgLoadError, http.StatusServiceUnavailable)
			return
		}

		player := r.URL.Query().Get("player")
		var records []matches.Record
		var err error
		if player != "" {
			records, err = s.Store.ForPlayer(player)
		} else {
			records, err = s.Store.All()
		}
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err, "player", player)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			log.Error("Failed to encode matches to JSON", "error", err)
		}
	}
}

// PlayerSummaryHandler serves one player's aggregate statistics.
func (s *Server) PlayerSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Controller.LoadFailed() {
			http.Error(w, view.MsgLoadError, http.StatusServiceUnavailable)
			return
		}

		player := r.URL.Query().Get("player")
		if player == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player summary request", "player", player, "requestID", requestIDFromContext(r))

		filtered, err := s.Store.ForPlayer(player)
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err, "player", player)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats.Summarize(filtered, player)); err != nil {
			log.Error("Failed to encode summary to JSON", "error", err)
		}
	}
}
