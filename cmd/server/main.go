// Command server runs the usage metering HTTP API.
//
// It loads configuration from the environment (optionally a .env file),
// configures structured logging and tracing, wires the upstream clients into
// the usage service, and serves the Gin router with graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/orbital-copilot/usage-api/internal/config"
	httpapi "github.com/orbital-copilot/usage-api/internal/http"
	"github.com/orbital-copilot/usage-api/internal/observability"
	"github.com/orbital-copilot/usage-api/internal/services"
	"github.com/orbital-copilot/usage-api/internal/sysutil"
	"github.com/orbital-copilot/usage-api/internal/upstream"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	zerolog.TimeFieldFormat = time.RFC3339
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	log.Info().
		Str("version", version).
		Str("port", cfg.Port).
		Str("base_path", cfg.APIBasePath).
		Str("messages_url", cfg.MessagesURL).
		Str("reports_url", cfg.ReportsURL).
		Msg("starting usage-api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.Setup(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("tracing setup failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown failed")
		}
	}()

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	reports, err := upstream.NewReportsClient(
		cfg.ReportsURL,
		httpClient,
		cfg.ReportCacheSize,
		rate.NewLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst),
		log.With().Str("component", "reports_client").Logger(),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("reports client setup failed")
	}

	svc := &services.UsageService{
		Messages: upstream.NewMessagesClient(cfg.MessagesURL, httpClient, log.With().Str("component", "messages_client").Logger()),
		Reports:  reports,
		Log:      log.With().Str("component", "usage_service").Logger(),
	}

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, svc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped cleanly")
}
