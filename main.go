package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/config"
	"github.com/everolfe/matchday/internal/database"
	server "github.com/everolfe/matchday/internal/http"
	"github.com/everolfe/matchday/internal/matchapi"
	"github.com/everolfe/matchday/internal/metrics"
	"github.com/everolfe/matchday/internal/notifier/slack"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/scheduler"
	"github.com/everolfe/matchday/internal/snapshot"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	snapshotStore := snapshot.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	backendClient := matchapi.NewClient(cfg.Backend.BaseURL)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsubClient := pubsub.New(cfg.ProjectID)

	sched := scheduler.New(backendClient, snapshotStore, notifier, metricsSvc, pubsubClient)

	// Seed the collections from the local snapshot so listings are available
	// immediately, then reconcile against the backend. A failed initial
	// refresh is not fatal: the snapshot keeps the service usable and a later
	// /refresh catches up.
	if err := sched.LoadFromSnapshot(); err != nil {
		log.Error("Failed to load snapshot", "error", err)
	}
	refreshCtx, cancelRefresh := context.WithTimeout(context.Background(), 30*time.Second)
	if err := sched.Refresh(refreshCtx); err != nil {
		log.Error("Initial refresh failed, serving snapshot data", "error", err)
	}
	cancelRefresh()

	s := server.NewServer(sched, metricsSvc, metricsHandler, cfg, pubsubClient)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
