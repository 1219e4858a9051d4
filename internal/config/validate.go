package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate checks that all required fields are set and values are valid.
// Database settings are validated separately by ValidateDatabase since
// only the exporter needs them.
func (c *BotConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if utf8.RuneCountInString(c.Commands.Marker) != 1 {
		return fmt.Errorf("commands.marker must be a single character, got %q", c.Commands.Marker)
	}
	if len(c.Commands.Channels) == 0 {
		return errors.New("commands.channels must list at least one channel")
	}
	if c.Commands.PageLimit < 1 {
		return errors.New("commands.page_limit must be >= 1")
	}
	if c.Commands.BestWindow <= 0 {
		return errors.New("commands.best_window must be positive")
	}

	if c.Storage.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	if c.Gateway.URL == "" {
		return errors.New("gateway.url is required")
	}
	if c.Gateway.BufferSize < 1 {
		return errors.New("gateway.buffer_size must be >= 1")
	}

	return nil
}

// ValidateDatabase checks the exporter's Postgres settings.
func (c *BotConfig) ValidateDatabase() error {
	db := c.Database
	if db.Host == "" {
		return errors.New("database.host is required")
	}
	if db.Name == "" {
		return errors.New("database.name is required")
	}
	if db.User == "" {
		return errors.New("database.user is required")
	}
	if db.Password == "" {
		return errors.New("database.password is required")
	}
	if db.MaxConns < 1 {
		return errors.New("database.max_conns must be >= 1")
	}
	if db.MinConns < 0 {
		return errors.New("database.min_conns must be >= 0")
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("database.min_conns (%d) cannot exceed max_conns (%d)", db.MinConns, db.MaxConns)
	}
	return nil
}
