package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/stalkmarket/stalkbot/internal/bot"
	"github.com/stalkmarket/stalkbot/internal/config"
	"github.com/stalkmarket/stalkbot/internal/render"
	"github.com/stalkmarket/stalkbot/internal/transport"
	"github.com/stalkmarket/stalkbot/internal/version"
)

func main() {
	// Local development reads secrets like STALKBOT_TOKEN from .env.
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/stalkbot.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting stalkbot",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"gateway_url", cfg.Gateway.URL,
		"data_dir", cfg.Storage.DataDir,
	)

	if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
		logger.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	gateway := transport.NewWSGateway(transport.GatewayConfig{
		URL:          cfg.Gateway.URL,
		Token:        cfg.Gateway.Token,
		BufferSize:   cfg.Gateway.BufferSize,
		PingInterval: cfg.Gateway.PingInterval,
		ReadTimeout:  cfg.Gateway.ReadTimeout,
	}, logger)

	logger.Info("connecting to gateway", "url", cfg.Gateway.URL)
	if err := gateway.Connect(ctx); err != nil {
		logger.Error("failed to connect to gateway", "error", err)
		os.Exit(1)
	}
	defer gateway.Close()

	b := bot.New(cfg, gateway, gateway.Self().ID, nil, &render.SVGRenderer{}, logger)

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("bot stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("stalkbot stopped")
}
