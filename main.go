package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bordhockey/statsboard/internal/config"
	"github.com/bordhockey/statsboard/internal/database"
	server "github.com/bordhockey/statsboard/internal/http"
	"github.com/bordhockey/statsboard/internal/loader"
	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/metrics"
	"github.com/bordhockey/statsboard/internal/view"
	"github.com/charmbracelet/log"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := matches.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	datasetLoader := loader.NewClient(cfg.DataURL)

	// Exactly one load attempt per process lifecycle. On failure the store
	// stays empty and selection stays disabled until the process restarts.
	loadFailed := false
	metricsSvc.IncLoads()
	records, err := datasetLoader.Load(context.Background())
	if err != nil {
		loadFailed = true
		metricsSvc.IncLoadFailures()
		log.Error("Failed to load match dataset", "error", err, "url", cfg.DataURL)
	} else {
		if err := store.ReplaceAll(records); err != nil {
			loadFailed = true
			metricsSvc.IncLoadFailures()
			log.Error("Failed to populate match store", "error", err)
			store.Clear()
		} else {
			metricsSvc.SetDatasetSize(float64(len(records)))
			log.Info("Match dataset loaded", "count", len(records))
		}
	}

	controller := view.NewController(store, metricsSvc, loadFailed)
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse page template: %s", err)
	}

	s := server.NewServer(store, metricsSvc, metricsHandler, cfg, controller, renderer)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
