//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitbucket.org/crgw/rental-quote/internal/booking"
	"bitbucket.org/crgw/rental-quote/internal/catalog"
	"bitbucket.org/crgw/rental-quote/internal/config"
	"bitbucket.org/crgw/rental-quote/internal/quoting"
	"bitbucket.org/crgw/rental-quote/internal/tools/caching"
	"bitbucket.org/crgw/rental-quote/internal/tools/grouping"
	"bitbucket.org/crgw/rental-quote/internal/tools/logger"
	"bitbucket.org/crgw/rental-quote/internal/tools/redisfactory"
	"bitbucket.org/crgw/rental-quote/internal/web"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func newRelicApp(cfg config.NewRelicConfig, log *zerolog.Logger) *newrelic.Application {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize New Relic")
		return nil
	}

	log.Info().Str("app", cfg.AppName).Msg("New Relic enabled")

	return app
}

func quotingDependencies(cfg *config.Config, redisFactory *redisfactory.Factory, nrApp *newrelic.Application, log *zerolog.Logger) (quoting.Dependencies, func()) {
	deps := quoting.Dependencies{}
	cleanup := func() {}

	if cfg.Catalog.URL != "" {
		options := catalog.Options{
			BaseURL:  cfg.Catalog.URL,
			Timeout:  cfg.Catalog.Timeout,
			CacheTTL: cfg.Catalog.CacheTTL,
		}

		if redisClient := redisFactory.CatalogCacheClient(); redisClient != nil {
			options.Cache = caching.NewRedisCache(redisClient, "catalog")
			options.Locker = grouping.NewRedisLocker(redisClient)
		}

		if nrApp != nil {
			options.Transport = newrelic.NewRoundTripper(nil)
		}

		deps.Catalog = catalog.NewClient(options)
	} else {
		log.Warn().Msg("CATALOG_API_URL is not set, car quotes are disabled")
	}

	if cfg.Database.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := booking.NewDatabase(ctx, cfg.Database.URL, nrApp)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to bookings database, booking audit is disabled")
		} else {
			deps.Auditor = booking.NewAuditor(booking.NewPostgresRepository(db))
			cleanup = func() { db.Close() }
		}
	} else {
		log.Warn().Msg("DATABASE_URL is not set, booking audit is disabled")
	}

	return deps, cleanup
}

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	nrApp := newRelicApp(cfg.NewRelic, log)

	redisFactory, err := redisfactory.New(cfg.Catalog.CacheURI, nrApp)
	if err != nil {
		log.Error().Err(err).Msg("Invalid CATALOG_CACHE_REDIS_URI")
		os.Exit(1)
	}

	deps, cleanup := quotingDependencies(cfg, redisFactory, nrApp, log)

	appRouter, err := web.SetupRouter(log, web.Dependencies{
		Quoting:     deps,
		NewRelicApp: nrApp,
		Production:  cfg.Server.Production,
	})
	if err != nil {
		log.Error().Err(err).Msg("Invalid api document")
		os.Exit(1)
	}

	var host string
	if cfg.Server.Test {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, cfg.Server.Port),
		Handler:           appRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	code := serverApp(httpServer, log)

	cleanup()
	_ = redisFactory.Close()
	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	os.Exit(code)
}
