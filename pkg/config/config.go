package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config holds the site configuration loaded from the environment
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	PrivacyURL           string        `env:"PRIVACY_URL" envDefault:"https://api.reachx.dev/assets/resources/privacy.markdown"`
	TermsURL             string        `env:"TERMS_URL" envDefault:"https://api.reachx.dev/assets/resources/terms.markdown"`
	LegalFetchTimeout    time.Duration `env:"LEGAL_FETCH_TIMEOUT" envDefault:"5s"`
	LegalCacheTTL        time.Duration `env:"LEGAL_CACHE_TTL" envDefault:"10m"`
	LegalRefreshInterval time.Duration `env:"LEGAL_REFRESH_INTERVAL" envDefault:"5m"`

	// Empty RedisAddr disables the document cache and click counters
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DownloadBaseURL string `env:"DOWNLOAD_BASE_URL" envDefault:"https://api.reachx.dev/downloads"`
	ReleaseVersion  string `env:"RELEASE_VERSION" envDefault:"0.5.0-beta.canary"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that env parsing cannot
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}

	durations := map[string]time.Duration{
		"LEGAL_FETCH_TIMEOUT":    c.LegalFetchTimeout,
		"LEGAL_CACHE_TTL":        c.LegalCacheTTL,
		"LEGAL_REFRESH_INTERVAL": c.LegalRefreshInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	urls := map[string]string{
		"PRIVACY_URL":       c.PrivacyURL,
		"TERMS_URL":         c.TermsURL,
		"DOWNLOAD_BASE_URL": c.DownloadBaseURL,
	}
	for name, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}

	if c.LogFormat != "json" && c.LogFormat != "text" {
		return errors.New("LOG_FORMAT must be json or text")
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

// CacheEnabled reports whether a Redis address is configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// ConfigureLogging applies the log level and format to the standard logrus logger
func (c *Config) ConfigureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	logrus.SetLevel(level)

	if c.LogFormat == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}
