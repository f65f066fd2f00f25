// Package config loads and validates application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
)

// Supabase holds the remote store credentials.
type Supabase struct {
	// URL is the project URL, e.g. https://xyz.supabase.co
	URL string `mapstructure:"url"`
	// Key is the service role key used for both apikey and bearer auth.
	Key string `mapstructure:"key"`
	// RequestTimeout bounds each store call.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Scraper holds web-scraper settings.
type Scraper struct {
	// Sources is the fixed list of card-comparison pages to fetch.
	Sources []string `mapstructure:"sources"`
	// UserAgent is sent on every request.
	UserAgent string `mapstructure:"user_agent"`
	// RequestTimeout bounds each page fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// Delay is the pause between requests to the same host.
	Delay time.Duration `mapstructure:"delay"`
}

// Config is the root application configuration.
type Config struct {
	Supabase Supabase      `mapstructure:"supabase"`
	Scraper  Scraper       `mapstructure:"scraper"`
	Logger   logger.Config `mapstructure:"logger"`
}

// Load reads configuration from viper (already primed with defaults, the
// optional config file, and environment bindings by the root command).
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration. Missing store credentials are fatal
// and must be surfaced before any network or database activity.
func (c *Config) Validate() error {
	if c.Supabase.URL == "" || c.Supabase.Key == "" {
		return domain.ErrMissingCredentials
	}
	if len(c.Scraper.Sources) == 0 {
		return fmt.Errorf("scraper: at least one source URL must be configured")
	}
	return nil
}
