package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/naatukodi/catering/docs/swagger"
	"github.com/naatukodi/catering/pkg/app"
	"github.com/naatukodi/catering/pkg/config"
	"github.com/naatukodi/catering/pkg/cosmos"
	"github.com/naatukodi/catering/pkg/httpx"
	"github.com/naatukodi/catering/pkg/logger"
	"github.com/naatukodi/catering/pkg/telemetry"
	catalogAPI "github.com/naatukodi/catering/services/catalog/application/api"
	ordersAPI "github.com/naatukodi/catering/services/orders/application/api"
	areasAPI "github.com/naatukodi/catering/services/serviceareas/application/api"
	usersAPI "github.com/naatukodi/catering/services/users/application/api"
)

// @title					Catering Marketplace API
// @version				1.0
// @description			Backend for a catering marketplace: caterer catalogs, orders, service areas, and user accounts.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	store, err := cosmos.New(cfg)
	if err != nil {
		log.Error("failed to create cosmos client", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	// Provision database + containers once, before serving traffic.
	// Write paths never re-check container existence.
	provisionCtx, cancelProvision := context.WithTimeout(ctx, 60*time.Second)
	defer cancelProvision()
	if err := store.Provision(provisionCtx, cfg); err != nil {
		log.Error("failed to provision cosmos containers", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("cosmos store provisioned", "database", cfg.CosmosDatabase)

	appConfig := &app.Application{
		Store:  store,
		Logger: log,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Store: store,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.ListenAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalogAPI.CatalogRoutes(r, a)
	ordersAPI.OrderRoutes(r, a)
	areasAPI.ServiceAreaRoutes(r, a)
	usersAPI.UserRoutes(r, a)
}
