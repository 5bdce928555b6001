package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donationsvc/internal/adapter/repo"
	"donationsvc/internal/http/handlers"
	httpapi "donationsvc/internal/http/httpapi"
	"donationsvc/internal/infra"
	"donationsvc/internal/market"
	"donationsvc/internal/service"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// DB pool (pgxpool)
	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	// Wiring: sql runner -> repository -> service -> handlers
	runner := infra.NewSQLRunner(dbpool, logger)
	donations := repo.NewDonationRepository(runner)
	marketClient := market.NewClient(market.Options{
		MarketDataURL: cfg.MarketDataURL,
		TrendsURL:     cfg.TrendsURL,
		Timeout:       cfg.MarketTimeout,
	}, logger)
	svc := service.NewDonationService(donations, marketClient, logger)

	app := handlers.NewApp(svc, logger)
	router := httpapi.NewRouter(app, logger, cfg.CORSAllowedOrigins)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
