// Package main provides the entry point for the strompreis API server
// @title Strompreis API
// @version 1.0
// @description Austrian day-ahead electricity price API backed by the aWATTar market data feed.
// @host localhost:8080
// @BasePath /api
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"strompreis/internal/api/routes"
	"strompreis/internal/config"
	"strompreis/internal/logging"
	"strompreis/internal/market"
	"strompreis/internal/market/awattar"
	"strompreis/internal/pricing"
	"strompreis/internal/validation"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	// Load environment file before anything reads the environment
	envErr := godotenv.Load(*envFile)

	// Load configuration
	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		bootLog := logging.New("api", "info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logging.New("api", cfg.LogLevel)
	if envErr != nil && *envFile == ".env" {
		log.Warn().Err(envErr).Msg("no env file loaded")
	}

	loc, err := time.LoadLocation(cfg.Market.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Market.Timezone).Msg("failed to load market timezone")
	}

	// Initialize validators
	validation.Initialize()

	// Wire the upstream fetcher behind the range cache
	fetcher := market.NewCache(awattar.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout), cfg.Cache.TTL)
	composer := pricing.NewComposer(loc, fetcher.FetchRange)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Prefetch.Enabled {
		scheduler := market.NewScheduler(fetcher, loc, cfg.Prefetch.Schedule, logging.New("prefetch", cfg.LogLevel))
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				log.Error().Err(err).Msg("prefetch scheduler stopped")
			}
		}()
	}

	// Setup routes
	router := routes.SetupRoutes(cfg, composer, loc, log)

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.API.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.API.Port).Str("timezone", loc.String()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")
	cancel()

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
