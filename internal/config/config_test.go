package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/shoestore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		want      config.Config
		wantError string
	}{
		{
			name: "defaults: ok",
			want: config.Config{
				Env:           "development",
				LogLevel:      "info",
				CatalogSource: config.CatalogStatic,
			},
		},
		{
			name: "postgres source: ok",
			env: map[string]string{
				"ENV":              "production",
				"LOG_LEVEL":        "debug",
				"CATALOG_SOURCE":   "Postgres",
				"DATABASE_URL":     "postgres://localhost/shoestore",
				"CHECKOUT_ENABLED": "true",
			},
			want: config.Config{
				Env:             "production",
				LogLevel:        "debug",
				CatalogSource:   config.CatalogPostgres,
				DatabaseURL:     "postgres://localhost/shoestore",
				CheckoutEnabled: true,
			},
		},
		{
			name:      "postgres source without url: error",
			env:       map[string]string{"CATALOG_SOURCE": "postgres"},
			wantError: "DATABASE_URL is empty",
		},
		{
			name:      "unknown source: error",
			env:       map[string]string{"CATALOG_SOURCE": "s3"},
			wantError: "CATALOG_SOURCE[s3] is not valid",
		},
		{
			name:      "checkout flag not boolean: error",
			env:       map[string]string{"CHECKOUT_ENABLED": "maybe"},
			wantError: `CHECKOUT_ENABLED is not a boolean: strconv.ParseBool: parsing "maybe": invalid syntax`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"ENV", "LOG_LEVEL", "CATALOG_SOURCE", "DATABASE_URL", "CHECKOUT_ENABLED"} {
				t.Setenv(key, tt.env[key])
			}

			got, err := config.Load()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("CATALOG_SOURCE", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CATALOG_SOURCE=static\nLOG_LEVEL=warn\n"), 0o600))

	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	loaded, err := config.LoadDotEnv(envPath)
	require.NoError(t, err)
	assert.True(t, loaded)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	loaded, err = config.LoadDotEnv(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.False(t, loaded)
}
