package config

import (
	"strings"
	"testing"
)

func TestValidateForProduction(t *testing.T) {
	t.Run("skips validation outside production", func(t *testing.T) {
		cfg := &Config{
			Environment:    EnvDevelopment,
			CosmosEndpoint: "https://localhost:8081",
			LogLevel:       "debug",
		}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accepts a complete production config", func(t *testing.T) {
		cfg := &Config{
			Environment:    EnvProduction,
			CosmosEndpoint: "https://catering.documents.azure.com:443/",
			CosmosKey:      "secret",
			LogLevel:       "info",
		}
		if err := ValidateForProduction(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects missing cosmos key", func(t *testing.T) {
		cfg := &Config{
			Environment:    EnvProduction,
			CosmosEndpoint: "https://catering.documents.azure.com:443/",
			LogLevel:       "info",
		}
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "COSMOS_KEY") {
			t.Fatalf("expected COSMOS_KEY in error, got %v", err)
		}
	})

	t.Run("rejects the local emulator endpoint", func(t *testing.T) {
		cfg := &Config{
			Environment:    EnvProduction,
			CosmosEndpoint: "https://localhost:8081",
			CosmosKey:      "secret",
			LogLevel:       "info",
		}
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "COSMOS_ENDPOINT") {
			t.Fatalf("expected COSMOS_ENDPOINT in error, got %v", err)
		}
	})

	t.Run("rejects debug logging", func(t *testing.T) {
		cfg := &Config{
			Environment:    EnvProduction,
			CosmosEndpoint: "https://catering.documents.azure.com:443/",
			CosmosKey:      "secret",
			LogLevel:       "debug",
		}
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "LOG_LEVEL") {
			t.Fatalf("expected LOG_LEVEL in error, got %v", err)
		}
	})

	t.Run("collects multiple violations", func(t *testing.T) {
		cfg := &Config{
			Environment:    EnvProduction,
			CosmosEndpoint: "https://localhost:8081",
			LogLevel:       "debug",
		}
		err := ValidateForProduction(cfg)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		for _, want := range []string{"COSMOS_KEY", "COSMOS_ENDPOINT", "LOG_LEVEL"} {
			if !strings.Contains(err.Error(), want) {
				t.Fatalf("expected %s in error, got %v", want, err)
			}
		}
	})
}
