package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stalkmarket/stalkbot/internal/model"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS price_events (
	author TEXT NOT NULL,
	kind TEXT NOT NULL,
	price INTEGER NOT NULL,
	ts TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS collection_events (
	author TEXT NOT NULL,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS user_preferences (
	author TEXT NOT NULL,
	hemisphere TEXT NOT NULL,
	timezone TEXT NOT NULL
);
`

// Exporter copies ledger rows into Postgres.
type Exporter struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// New creates an exporter on the given pool.
func New(db *pgxpool.Pool, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{db: db, logger: logger}
}

// EnsureSchema creates the destination tables when missing.
func (e *Exporter) EnsureSchema(ctx context.Context) error {
	if _, err := e.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create export schema: %w", err)
	}
	return nil
}

// Prices truncates and reloads the price_events table.
func (e *Exporter) Prices(ctx context.Context, events []model.PriceEvent) (int64, error) {
	if _, err := e.db.Exec(ctx, "TRUNCATE price_events"); err != nil {
		return 0, fmt.Errorf("truncate price_events: %w", err)
	}

	rows := make([][]any, len(events))
	for i, ev := range events {
		rows[i] = []any{ev.Author, string(ev.Kind), ev.Price, ev.Timestamp}
	}
	n, err := e.db.CopyFrom(ctx,
		pgx.Identifier{"price_events"},
		[]string{"author", "kind", "price", "ts"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy price_events: %w", err)
	}

	e.logger.Info("exported price events", "rows", n)
	return n, nil
}

// Collections truncates and reloads the collection_events table.
func (e *Exporter) Collections(ctx context.Context, events []model.CollectionEvent) (int64, error) {
	if _, err := e.db.Exec(ctx, "TRUNCATE collection_events"); err != nil {
		return 0, fmt.Errorf("truncate collection_events: %w", err)
	}

	rows := make([][]any, len(events))
	for i, ev := range events {
		rows[i] = []any{ev.Author, ev.Name}
	}
	n, err := e.db.CopyFrom(ctx,
		pgx.Identifier{"collection_events"},
		[]string{"author", "name"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy collection_events: %w", err)
	}

	e.logger.Info("exported collection events", "rows", n)
	return n, nil
}

// Preferences truncates and reloads the user_preferences table with the
// authoritative row per user.
func (e *Exporter) Preferences(ctx context.Context, prefs map[string]model.UserPreference) (int64, error) {
	if _, err := e.db.Exec(ctx, "TRUNCATE user_preferences"); err != nil {
		return 0, fmt.Errorf("truncate user_preferences: %w", err)
	}

	rows := make([][]any, 0, len(prefs))
	for _, p := range prefs {
		rows = append(rows, []any{p.Author, string(p.Hemisphere), p.Timezone})
	}
	n, err := e.db.CopyFrom(ctx,
		pgx.Identifier{"user_preferences"},
		[]string{"author", "hemisphere", "timezone"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy user_preferences: %w", err)
	}

	e.logger.Info("exported user preferences", "rows", n)
	return n, nil
}
