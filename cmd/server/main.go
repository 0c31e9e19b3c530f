package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loadboard-service/internal/infrastructure/config"
	"loadboard-service/internal/infrastructure/persistence"
	gormRepo "loadboard-service/internal/interface/repository"
	"loadboard-service/internal/interface/rest"
	"loadboard-service/internal/usecase"
	"loadboard-service/pkg/logger"
	"loadboard-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Loadboard Service", "version", cfg.AppVersion)

	if cfg.APIKey == "" {
		log.Warn("API_KEY is not set; all authenticated endpoints will reject requests")
	}

	// Set up the database
	log.Info("Connecting to database")
	db, err := persistence.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	if err := persistence.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}

	// Set up repositories
	loadRepository := gormRepo.NewGormLoadRepository(db)
	callRepository := gormRepo.NewGormCallRepository(db)

	// Set up services
	loadService := usecase.NewLoadService(loadRepository, log)
	callService := usecase.NewCallService(callRepository, log)
	agentMetrics := usecase.NewAgentMetricsService(callRepository, log)

	// Set up HTTP server
	m := metrics.NewMetrics("loadboard")
	router := rest.NewRouter(cfg, log, m, loadService, callService, agentMetrics)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Database close error", "error", err)
		}
	}

	log.Info("Loadboard Service stopped")
}
