package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viztube/internal/config"
	"viztube/internal/di"
	"viztube/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	api, cleanup, err := initialize(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to initialize application")
	}
	defer cleanup()

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:        di.NewRouter(api, cfg.Server.CORSOrigin),
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logging.Info().Str("addr", server.Addr).Str("backend", cfg.Store.Backend).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("server forced to shutdown")
	}

	logging.Info().Msg("server gracefully stopped")
}

func initialize(cfg *config.Config) (*di.API, func(), error) {
	switch cfg.Store.Backend {
	case "mysql":
		return di.InitializeMySQL(cfg)
	case "mongo", "mongodb":
		return di.InitializeMongo(cfg)
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q (want mysql or mongo)", cfg.Store.Backend)
	}
}
