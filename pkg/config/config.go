package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// Cosmos DB
	CosmosEndpoint          string `conf:"default:https://localhost:8081,env:COSMOS_ENDPOINT"`
	CosmosKey               string `conf:"default:,env:COSMOS_KEY,noprint"`
	CosmosDatabase          string `conf:"default:catering,env:COSMOS_DATABASE"`
	CatalogContainerID      string `conf:"default:catalog,env:COSMOS_CATALOG_CONTAINER"`
	OrdersContainerID       string `conf:"default:orders,env:COSMOS_ORDERS_CONTAINER"`
	ServiceAreasContainerID string `conf:"default:serviceareas,env:COSMOS_SERVICEAREAS_CONTAINER"`
	UsersContainerID        string `conf:"default:users,env:COSMOS_USERS_CONTAINER"`

	// Application
	ListenAddr  string `conf:"default::8080,env:LISTEN_ADDR"`
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:catering-api,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"default:,env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"default:,env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults.
// Call once at process start and pass the result to constructors; nothing
// re-reads configuration after startup.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.CosmosKey == "" {
		errs = append(errs, "COSMOS_KEY must be set in production")
	}

	if strings.HasPrefix(cfg.CosmosEndpoint, "https://localhost") {
		errs = append(errs, "COSMOS_ENDPOINT must not point at the local emulator in production")
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
