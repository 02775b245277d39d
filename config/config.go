// Package config loads dictscrape settings from an optional YAML file and
// DICTSCRAPE_* environment variables using cleanenv.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/dictscrape"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigPathEnv names the variable holding the YAML config path.
const ConfigPathEnv = "DICTSCRAPE_CONFIG"

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Site     SiteConfig     `yaml:"site"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds the saved-list database settings.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DICTSCRAPE_DB" env-default:"~/.dictscrape/dictscrape.db"`
}

// SiteConfig holds the dictionary site settings.
type SiteConfig struct {
	BaseURL string `yaml:"base_url" env:"DICTSCRAPE_BASE_URL" env-default:"https://www.macmillandictionary.com"`
	Region  string `yaml:"region"   env:"DICTSCRAPE_REGION"   env-default:"us"`
	Dialect string `yaml:"dialect"  env:"DICTSCRAPE_DIALECT"  env-default:"american"`
}

// HTTPConfig holds outbound request settings. An empty user agent selects
// the fetcher's default.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"    env:"DICTSCRAPE_TIMEOUT"    env-default:"4s"`
	UserAgent string        `yaml:"user_agent" env:"DICTSCRAPE_USER_AGENT"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"DICTSCRAPE_LOG_LEVEL" env-default:"warn"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML path comes from DICTSCRAPE_CONFIG; when it is unset,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := cleanenv.ReadConfig(expandHome(path), &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.Database.Path = expandHome(cfg.Database.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return dictscrape.Errorf(dictscrape.EINVALID, "database.path required")
	}
	if c.HTTP.Timeout <= 0 {
		return dictscrape.Errorf(dictscrape.EINVALID, "http.timeout must be > 0 (got %s)", c.HTTP.Timeout)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch d := strings.ToLower(strings.TrimSpace(c.Site.Dialect)); d {
	case "", string(dictscrape.DialectAmerican), string(dictscrape.DialectBritish):
	default:
		return dictscrape.Errorf(dictscrape.EINVALID, "site.dialect must be american or british (got %q)", c.Site.Dialect)
	}
	return nil
}

// DictionarySite returns the dictionary site described by the configuration.
func (c *Config) DictionarySite() dictscrape.Site {
	return dictscrape.Site{BaseURL: c.Site.BaseURL, Region: c.Site.Region}
}

// Dialect returns the configured default dialect.
func (c *Config) Dialect() dictscrape.Dialect {
	return dictscrape.ParseDialect(c.Site.Dialect)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, dictscrape.Errorf(dictscrape.EINVALID, "log.level must be one of debug, info, warn, error (got %q)", s)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
