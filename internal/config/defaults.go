package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultMarker       = "!"
	DefaultPageLimit    = 2000
	DefaultBestWindow   = 12 * time.Hour
	DefaultPredictBase  = "https://turnipprophet.io/?prices="
	DefaultDataDir      = "data"
	DefaultBufferSize   = 256
	DefaultPingInterval = 15 * time.Second
	DefaultReadTimeout  = 30 * time.Second
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 4
	DefaultMinConns     = 1
)

func (c *BotConfig) applyDefaults() {
	// Command defaults
	if c.Commands.Marker == "" {
		c.Commands.Marker = DefaultMarker
	}
	if c.Commands.PageLimit == 0 {
		c.Commands.PageLimit = DefaultPageLimit
	}
	if c.Commands.BestWindow == 0 {
		c.Commands.BestWindow = DefaultBestWindow
	}
	if c.Commands.PredictBase == "" {
		c.Commands.PredictBase = DefaultPredictBase
	}

	// Storage defaults
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = DefaultDataDir
	}

	// Gateway defaults
	if c.Gateway.BufferSize == 0 {
		c.Gateway.BufferSize = DefaultBufferSize
	}
	if c.Gateway.PingInterval == 0 {
		c.Gateway.PingInterval = DefaultPingInterval
	}
	if c.Gateway.ReadTimeout == 0 {
		c.Gateway.ReadTimeout = DefaultReadTimeout
	}

	// Database defaults (exporter only)
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}
}
