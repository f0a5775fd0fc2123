// Command media-server runs the GridFS media routes on their own, for
// deployments that keep file traffic off the API process. Tokens are checked
// with the same access secret the API signs with.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"viztube/internal/common"
	"viztube/internal/config"
	"viztube/internal/dbmongo"
	"viztube/internal/di"
	"viztube/internal/logging"
	"viztube/internal/media"
)

func main() {
	cfg := config.LoadConfig()
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	mongoClient, cleanup, err := di.ProvideMongoClient(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer cleanup()

	rs := di.ProvideResponder(cfg)
	auth := common.NewAuthenticator(di.ProvideTokenManager(cfg), rs)
	mediaServer := media.NewHTTPServer(dbmongo.NewMediaStorage(mongoClient), cfg.Media, rs)

	router := mux.NewRouter()
	router.Use(common.RequestID, common.AccessLog, common.CORS(cfg.Server.CORSOrigin))
	mediaServer.RegisterFileRoutes(router)
	mediaServer.RegisterRoutes(router.PathPrefix("/api/v2").Subrouter(), auth)

	addr := ":" + getEnvOrDefault("MEDIA_SERVER_PORT", "8080")
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		logging.Info().Str("addr", addr).Str("base_url", cfg.Media.BaseURL).Msg("media server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("media server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("media server forced to shutdown")
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
