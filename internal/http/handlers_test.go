package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bordhockey/statsboard/internal/config"
	"github.com/bordhockey/statsboard/internal/database"
	server "github.com/bordhockey/statsboard/internal/http"
	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/metrics"
	"github.com/bordhockey/statsboard/internal/stats"
	"github.com/bordhockey/statsboard/internal/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDataset = []matches.Record{
	{Player1: "Anders", Player2: "Bjarne", GoalsPlayer1: "3", GoalsPlayer2: "1", Date: "2024-01-05", TournamentName: "Oslo Open"},
	{Player1: "Carl", Player2: "Anders", GoalsPlayer1: "2", GoalsPlayer2: "2", Date: "2024-02-10"},
	{Player1: "bjarne", Player2: "Carl", GoalsPlayer1: "0", GoalsPlayer2: "5", Date: "2024-03-01"},
}

// setupTestServer initializes a new server over an in-memory database.
func setupTestServer(t *testing.T, records []matches.Record, loadFailed bool) *server.Server {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	store := matches.New(db)
	if records != nil {
		require.NoError(t, store.ReplaceAll(records))
	}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	controller := view.NewController(store, metricsSvc, loadFailed)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	cfg := config.Config{Port: "8080"}
	return server.NewServer(store, metricsSvc, metricsHandler, cfg, controller, renderer)
}

func TestHealthCheckHandler(t *testing.T) {
	srv := setupTestServer(t, nil, false)

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	srv.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestViewHandler(t *testing.T) {
	t.Run("initial page lists players", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Anders")
		assert.Contains(t, body, "Carl")
		assert.Contains(t, body, view.MsgSelectPrompt)
		assert.Contains(t, body, `<section id="summary" hidden>`)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("selection renders summary and history", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/?player=Anders", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Showing statistics for Anders")
		assert.Contains(t, body, "Feb 10, 2024")
		assert.Contains(t, body, "Oslo Open")
		assert.NotContains(t, body, `<section id="summary" hidden>`)
	})

	t.Run("failed load renders fixed error and disables selection", func(t *testing.T) {
		srv := setupTestServer(t, nil, true)

		req, _ := http.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, view.MsgLoadError)
		assert.Contains(t, body, "disabled")
	})

	t.Run("unknown path is a 404", func(t *testing.T) {
		srv := setupTestServer(t, nil, false)

		req, _ := http.NewRequest("GET", "/nope", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListPlayersHandler(t *testing.T) {
	srv := setupTestServer(t, testDataset, false)

	req, _ := http.NewRequest("GET", "/api/players", nil)
	rr := httptest.NewRecorder()
	srv.Router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var players []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	// De-duplicated ("bjarne" merges into "Bjarne") and sorted.
	assert.Equal(t, []string{"Anders", "Bjarne", "Carl"}, players)
}

func TestListMatchesHandler(t *testing.T) {
	t.Run("all matches in source order", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/api/matches", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []matches.Record
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 3)
		assert.Equal(t, "2024-01-05", got[0].Date)
		assert.Equal(t, "2024-03-01", got[2].Date)
	})

	t.Run("filtered by player", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/api/matches?player=Carl", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got []matches.Record
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
	})
}

func TestPlayerSummaryHandler(t *testing.T) {
	t.Run("returns aggregate statistics", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/api/summary?player=Anders", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var summary stats.Summary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
		assert.Equal(t, 2, summary.TotalGames)
		assert.Equal(t, 1, summary.Wins)
		assert.Equal(t, 1, summary.Draws)
		assert.Equal(t, "50.0", summary.WinPercentage)
	})

	t.Run("requires a player name", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/api/summary", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown player yields zeros", func(t *testing.T) {
		srv := setupTestServer(t, testDataset, false)

		req, _ := http.NewRequest("GET", "/api/summary?player=Nobody", nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var summary stats.Summary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
		assert.Zero(t, summary.TotalGames)
		assert.Equal(t, "0.0", summary.WinPercentage)
	})
}

func TestAPIsAfterFailedLoad(t *testing.T) {
	srv := setupTestServer(t, nil, true)

	for _, path := range []string{"/api/players", "/api/matches", "/api/summary?player=Anders"} {
		req, _ := http.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		srv.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code, path)
		assert.Contains(t, rr.Body.String(), view.MsgLoadError, path)
	}
}
