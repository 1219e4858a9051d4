package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-bot
commands:
  marker: "!"
  channels:
    - stalk-market
  admins:
    - "1001"
storage:
  data_dir: /var/lib/stalkbot
gateway:
  url: wss://gateway.example.com/ws
  token: abc123
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-bot" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-bot")
	}
	if len(cfg.Commands.Channels) != 1 || cfg.Commands.Channels[0] != "stalk-market" {
		t.Errorf("Commands.Channels = %v, want [stalk-market]", cfg.Commands.Channels)
	}
	if cfg.Storage.DataDir != "/var/lib/stalkbot" {
		t.Errorf("Storage.DataDir = %q, want %q", cfg.Storage.DataDir, "/var/lib/stalkbot")
	}
	if cfg.Gateway.URL != "wss://gateway.example.com/ws" {
		t.Errorf("Gateway.URL = %q", cfg.Gateway.URL)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_GATEWAY_TOKEN", "secret123")

	yaml := `
instance:
  id: test-bot
gateway:
  url: wss://gateway.example.com/ws
  token: ${TEST_GATEWAY_TOKEN}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Gateway.Token != "secret123" {
		t.Errorf("Gateway.Token = %q, want %q", cfg.Gateway.Token, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-bot
commands:
  channels:
    - stalk-market
gateway:
  url: wss://gateway.example.com/ws
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Commands.Marker != "!" {
		t.Errorf("Commands.Marker = %q, want %q", cfg.Commands.Marker, "!")
	}
	if cfg.Commands.PageLimit != 2000 {
		t.Errorf("Commands.PageLimit = %d, want 2000", cfg.Commands.PageLimit)
	}
	if cfg.Commands.BestWindow != 12*time.Hour {
		t.Errorf("Commands.BestWindow = %v, want 12h", cfg.Commands.BestWindow)
	}
	if cfg.Storage.DataDir != "data" {
		t.Errorf("Storage.DataDir = %q, want %q", cfg.Storage.DataDir, "data")
	}
	if cfg.Gateway.PingInterval != 15*time.Second {
		t.Errorf("Gateway.PingInterval = %v, want 15s", cfg.Gateway.PingInterval)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *BotConfig {
		cfg := &BotConfig{}
		cfg.Instance.ID = "bot"
		cfg.Commands.Channels = []string{"stalk-market"}
		cfg.Gateway.URL = "wss://gateway.example.com/ws"
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*BotConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(*BotConfig) {},
			wantErr: "",
		},
		{
			name:    "missing instance id",
			mutate:  func(c *BotConfig) { c.Instance.ID = "" },
			wantErr: "instance.id is required",
		},
		{
			name:    "multi-character marker",
			mutate:  func(c *BotConfig) { c.Commands.Marker = "!!" },
			wantErr: `commands.marker must be a single character, got "!!"`,
		},
		{
			name:    "no channels",
			mutate:  func(c *BotConfig) { c.Commands.Channels = nil },
			wantErr: "commands.channels must list at least one channel",
		},
		{
			name:    "bad page limit",
			mutate:  func(c *BotConfig) { c.Commands.PageLimit = -1 },
			wantErr: "commands.page_limit must be >= 1",
		},
		{
			name:    "missing gateway url",
			mutate:  func(c *BotConfig) { c.Gateway.URL = "" },
			wantErr: "gateway.url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func TestValidateDatabase(t *testing.T) {
	cfg := &BotConfig{}
	cfg.applyDefaults()
	if err := cfg.ValidateDatabase(); err == nil {
		t.Error("ValidateDatabase() with empty host expected error, got nil")
	}

	cfg.Database.Host = "localhost"
	cfg.Database.Name = "stalkbot"
	cfg.Database.User = "stalkbot"
	cfg.Database.Password = "secret"
	if err := cfg.ValidateDatabase(); err != nil {
		t.Errorf("ValidateDatabase() unexpected error: %v", err)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
