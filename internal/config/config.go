package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime parameters, loaded from environment variables.
type Config struct {
	Env       string
	HTTPPort  string
	SpannerDB string
	LogLevel  string

	// MaxBOMDepth caps hierarchy traversals. Zero falls back to the
	// engine default.
	MaxBOMDepth int
}

// Load reads the configuration, picking up a local .env file when present.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Env:       getEnv("APP_ENV", "development"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		SpannerDB: getEnv("SPANNER_DB", "projects/test-project/instances/dev-instance/databases/bom-db"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	depth := getEnv("MAX_BOM_DEPTH", "0")
	parsed, err := strconv.Atoi(depth)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_BOM_DEPTH %q: %w", depth, err)
	}
	cfg.MaxBOMDepth = parsed

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
