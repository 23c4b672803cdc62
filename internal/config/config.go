package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type CatalogSource string

const (
	CatalogStatic   CatalogSource = "static"
	CatalogPostgres CatalogSource = "postgres"
)

type Config struct {
	Env             string
	LogLevel        string
	CatalogSource   CatalogSource
	DatabaseURL     string
	CheckoutEnabled bool
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadDotEnv loads envPath outside production. A missing file is not an error.
func LoadDotEnv(envPath string) (bool, error) {
	if os.Getenv("ENV") == "production" {
		return false, nil
	}

	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return false, nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return false, fmt.Errorf("godotenv.Load[%s]: %w", envPath, err)
	}

	return true, nil
}

func Load() (Config, error) {
	cfg := Config{
		Env:           getenv("ENV", "development"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		CatalogSource: CatalogSource(strings.ToLower(getenv("CATALOG_SOURCE", string(CatalogStatic)))),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	enabled, err := strconv.ParseBool(getenv("CHECKOUT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("CHECKOUT_ENABLED is not a boolean: %w", err)
	}
	cfg.CheckoutEnabled = enabled

	switch cfg.CatalogSource {
	case CatalogStatic:
	case CatalogPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is empty")
		}
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE[%s] is not valid", cfg.CatalogSource)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
