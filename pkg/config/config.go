package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the config file cannot be parsed or
// fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Storage selects the key-value persistence backend.
type Storage struct {
	// Backend is one of "memory", "file", "redis".
	Backend string `yaml:"backend"`
	// Path is the state file location for the file backend.
	Path string `yaml:"path"`
	// RedisURL is the connection URL for the redis backend.
	// Overridable via REDIS_URL.
	RedisURL string `yaml:"redis_url"`
}

// Logging configures the slog output and optional Sentry reporting.
type Logging struct {
	Level string `yaml:"level"`
	// SentryDSN enables Sentry when non-empty. Overridable via SENTRY_DSN.
	SentryDSN   string `yaml:"sentry_dsn"`
	Environment string `yaml:"environment"`
}

// Config is the full application configuration.
type Config struct {
	// BackendURL is the REST backend base URL. Overridable via BACKEND_URL.
	BackendURL string        `yaml:"backend_url"`
	Storage    Storage       `yaml:"storage"`
	TaxRate    float64       `yaml:"tax_rate"`
	Locale     string        `yaml:"locale"`
	CatalogTTL time.Duration `yaml:"catalog_ttl"`
	Logging    Logging       `yaml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BackendURL: "http://localhost:8080/api",
		Storage:    Storage{Backend: "memory"},
		TaxRate:    0.24,
		Locale:     "el",
		CatalogTTL: 5 * time.Minute,
		Logging:    Logging{Level: "info", Environment: "development"},
	}
}

// Load reads the YAML file at path, fills gaps with defaults, and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		applyEnv(&cfg)
		return cfg, nil
	case err != nil:
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Storage.RedisURL = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Logging.SentryDSN = v
	}
}

func validate(cfg Config) error {
	switch cfg.Storage.Backend {
	case "memory", "file", "redis":
	default:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend))
	}
	if cfg.Storage.Backend == "file" && cfg.Storage.Path == "" {
		return errors.Join(ErrInvalidConfig, errors.New("file storage requires a path"))
	}
	if cfg.Storage.Backend == "redis" && cfg.Storage.RedisURL == "" {
		return errors.Join(ErrInvalidConfig, errors.New("redis storage requires a URL"))
	}
	if cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("tax rate %v out of range", cfg.TaxRate))
	}
	return nil
}

// LogLevel maps the configured level name to a slog.Level.
// Unknown names fall back to info.
func (c Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LanguageTag parses the configured locale, falling back to Greek (the
// storefront default) when unset or invalid.
func (c Config) LanguageTag() language.Tag {
	if c.Locale == "" {
		return language.Greek
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Greek
	}
	return tag
}
