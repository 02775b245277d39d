package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/dictscrape"
	"github.com/fwojciec/dictscrape/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// clearEnv pins every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.ConfigPathEnv, "DICTSCRAPE_DB", "DICTSCRAPE_BASE_URL", "DICTSCRAPE_REGION",
		"DICTSCRAPE_DIALECT", "DICTSCRAPE_TIMEOUT", "DICTSCRAPE_USER_AGENT", "DICTSCRAPE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/tester")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.dictscrape/dictscrape.db", cfg.Database.Path)
	assert.Equal(t, dictscrape.DefaultBaseURL, cfg.Site.BaseURL)
	assert.Equal(t, "us", cfg.Site.Region)
	assert.Equal(t, dictscrape.DialectAmerican, cfg.Dialect())
	assert.Equal(t, 4*time.Second, cfg.HTTP.Timeout)
	assert.Empty(t, cfg.HTTP.UserAgent)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("DICTSCRAPE_DB", "/tmp/words.db")
	t.Setenv("DICTSCRAPE_DIALECT", "british")
	t.Setenv("DICTSCRAPE_TIMEOUT", "10s")
	t.Setenv("DICTSCRAPE_USER_AGENT", "test-agent")
	t.Setenv("DICTSCRAPE_LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.db", cfg.Database.Path)
	assert.Equal(t, dictscrape.DialectBritish, cfg.Dialect())
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "test-agent", cfg.HTTP.UserAgent)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, `
database:
  path: "/var/lib/dictscrape.db"
site:
  base_url: "http://localhost:8080"
  region: "uk"
http:
  timeout: "2s"
log:
  level: "warn"
`)
	t.Setenv(config.ConfigPathEnv, path)
	t.Setenv("DICTSCRAPE_REGION", "us")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/dictscrape.db", cfg.Database.Path)
	assert.Equal(t, dictscrape.Site{BaseURL: "http://localhost:8080", Region: "us"}, cfg.DictionarySite())
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.ConfigPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load()

	require.Error(t, err)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("DICTSCRAPE_TIMEOUT", "0s")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			Database: config.DatabaseConfig{Path: "/tmp/d.db"},
			HTTP:     config.HTTPConfig{Timeout: time.Second},
			Log:      config.LogConfig{Level: "info"},
			Site:     config.SiteConfig{Dialect: "american"},
		}
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Log.Level = "verbose"
		assert.Equal(t, dictscrape.EINVALID, dictscrape.ErrorCode(cfg.Validate()))
	})

	t.Run("rejects an unknown dialect", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Site.Dialect = "australian"
		assert.Equal(t, dictscrape.EINVALID, dictscrape.ErrorCode(cfg.Validate()))
	})

	t.Run("rejects an empty database path", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.Database.Path = ""
		assert.Equal(t, dictscrape.EINVALID, dictscrape.ErrorCode(cfg.Validate()))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := config.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
