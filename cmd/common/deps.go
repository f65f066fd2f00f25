// Package common provides shared utilities for command implementations.
package common

import (
	"fmt"

	"github.com/jonesrussell/cardcrawl/internal/config"
	"github.com/jonesrussell/cardcrawl/internal/logger"
	"github.com/jonesrussell/cardcrawl/internal/store"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// NewCommandDeps loads configuration and constructs the logger.
// Configuration errors (missing store credentials) are returned before
// any network or database activity happens.
func NewCommandDeps() (*CommandDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps := &CommandDeps{
		Logger: log,
		Config: cfg,
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return deps, nil
}

// Validate ensures all required dependencies are present.
func (d *CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// NewCardRepository constructs the card repository over the configured
// remote store.
func (d *CommandDeps) NewCardRepository() *store.CardRepository {
	client := store.NewClient(store.Config{
		URL:            d.Config.Supabase.URL,
		Key:            d.Config.Supabase.Key,
		RequestTimeout: d.Config.Supabase.RequestTimeout,
	}, d.Logger)
	return store.NewCardRepository(client, d.Logger)
}
