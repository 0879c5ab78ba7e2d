package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"server/internal/domain/slotcfg"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/imagemeta"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/metrics"
	"server/internal/middleware"
	"server/internal/packstore"
	"server/internal/slotcheck"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	// Without a database the service still runs, serving the built-in slot
	// specs instead of weekly packs.
	packs := packstore.NewStatic(logger, slotcfg.DefaultSpecs())
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		packs = packstore.NewStore(infra.NewSQLRunner(pool, logger), logger, slotcfg.DefaultSpecs())
	} else {
		logger.Warn().Msg("DATABASE_URL not set, weekly packs disabled")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
		defer func() { _ = resolver.Close() }()
	}

	registry := prometheus.NewRegistry()
	engine := slotcheck.NewEngine(packs, logger)
	prober := imagemeta.NewProber(cfg.MaxUploadMB << 20)
	app := handlers.NewApp(cfg, logger, engine, packs, prober, metrics.New(registry))

	router := httpapi.NewRouter(app, registry, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

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
