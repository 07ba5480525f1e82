package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wichananm65/tourism-recsys/internal/config"
	"github.com/wichananm65/tourism-recsys/internal/interface/http/router"
	"github.com/wichananm65/tourism-recsys/internal/logging"
	"github.com/wichananm65/tourism-recsys/internal/place"
	"github.com/wichananm65/tourism-recsys/internal/recommended"
)

// main wires dependencies and serves until SIGINT or SIGTERM.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	catalog, err := place.NewCatalogRepository(place.DefaultCatalog())
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid place catalog")
	}

	recommendedHandler := recommended.NewHandler(recommended.NewService(catalog, cfg.Service.ModelVersion))
	placeHandler := place.NewHandler(place.NewService(catalog))

	app := router.New(cfg, recommendedHandler, placeHandler)

	go func() {
		logging.Info().
			Str("addr", cfg.Server.Addr).
			Int("places", len(catalog.List())).
			Str("version", cfg.Service.Version).
			Msg("starting server")
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logging.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logging.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("shutting down")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		logging.Error().Err(err).Msg("shutdown failed")
	}
}
