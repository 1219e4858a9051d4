package config

import "time"

// BotConfig is the root configuration for a stalkbot instance.
type BotConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	Commands CommandsConfig `yaml:"commands"`
	Storage  StorageConfig  `yaml:"storage"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Database DBConfig       `yaml:"database"`
}

// InstanceConfig identifies this bot instance.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// CommandsConfig holds command surface settings.
type CommandsConfig struct {
	Marker      string        `yaml:"marker"`       // Command marker, default "!"
	Channels    []string      `yaml:"channels"`     // Channel-name allow-list
	Admins      []string      `yaml:"admins"`       // User ids allowed to run !reset
	PageLimit   int           `yaml:"page_limit"`   // Max bytes per outbound message
	BestWindow  time.Duration `yaml:"best_window"`  // Trailing window for best-price queries
	PredictBase string        `yaml:"predict_base"` // Base URL for prediction links
}

// StorageConfig holds ledger file settings.
type StorageConfig struct {
	DataDir string `yaml:"data_dir"` // Directory holding the CSV ledgers and graphs
}

// GatewayConfig holds chat gateway connection settings.
type GatewayConfig struct {
	URL          string        `yaml:"url"`
	Token        string        `yaml:"token"`
	BufferSize   int           `yaml:"buffer_size"`
	PingInterval time.Duration `yaml:"ping_interval"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
}

// DBConfig holds the Postgres connection used by the exporter.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
