package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cardcrawl/internal/config"
	"github.com/jonesrussell/cardcrawl/internal/domain"
)

func validConfig() *config.Config {
	return &config.Config{
		Supabase: config.Supabase{
			URL:            "https://xyz.supabase.co",
			Key:            "service-role-key",
			RequestTimeout: 15 * time.Second,
		},
		Scraper: config.Scraper{
			Sources: []string{"https://example.com/best-cards"},
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validConfig().Validate())
}

func TestValidateMissingCredentials(t *testing.T) {
	t.Parallel()

	noURL := validConfig()
	noURL.Supabase.URL = ""
	assert.ErrorIs(t, noURL.Validate(), domain.ErrMissingCredentials)

	noKey := validConfig()
	noKey.Supabase.Key = ""
	assert.ErrorIs(t, noKey.Validate(), domain.ErrMissingCredentials)
}

func TestValidateRequiresSources(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Scraper.Sources = nil
	err := cfg.Validate()
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMissingCredentials)
}
