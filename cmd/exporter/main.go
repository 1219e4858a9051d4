// Command exporter bulk-copies the CSV ledgers into Postgres for offline
// analytics.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/stalkmarket/stalkbot/internal/config"
	"github.com/stalkmarket/stalkbot/internal/database"
	"github.com/stalkmarket/stalkbot/internal/export"
	"github.com/stalkmarket/stalkbot/internal/ledger"
	"github.com/stalkmarket/stalkbot/internal/version"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "configs/stalkbot.yaml", "path to config file")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall export timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting exporter",
		"version", version.Version,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateDatabase(); err != nil {
		logger.Error("invalid database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dataDir := cfg.Storage.DataDir
	prices, err := ledger.NewPriceLog(dataDir).Load()
	if err != nil {
		logger.Error("failed to load price ledger", "error", err)
		os.Exit(1)
	}
	fossils, err := ledger.NewFossilLog(dataDir).Load()
	if err != nil {
		logger.Error("failed to load collection ledger", "error", err)
		os.Exit(1)
	}
	prefs, err := ledger.NewPrefLog(dataDir).Current()
	if err != nil {
		logger.Error("failed to load preference ledger", "error", err)
		os.Exit(1)
	}

	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	exporter := export.New(pool, logger)
	if err := exporter.EnsureSchema(ctx); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	priceRows, err := exporter.Prices(ctx, prices)
	if err != nil {
		logger.Error("failed to export prices", "error", err)
		os.Exit(1)
	}
	fossilRows, err := exporter.Collections(ctx, fossils)
	if err != nil {
		logger.Error("failed to export collections", "error", err)
		os.Exit(1)
	}
	prefRows, err := exporter.Preferences(ctx, prefs)
	if err != nil {
		logger.Error("failed to export preferences", "error", err)
		os.Exit(1)
	}

	logger.Info("export complete",
		"price_events", priceRows,
		"collection_events", fossilRows,
		"user_preferences", prefRows,
	)
}
