package ledger

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stalkmarket/stalkbot/internal/model"
)

// PricesFile is the base name of the price ledger inside the data dir.
const PricesFile = "prices.csv"

var priceHeader = []string{"author", "kind", "price", "timestamp"}

// PriceLog is the typed facade over the price ledger.
type PriceLog struct {
	store *Store
}

// NewPriceLog opens the price ledger under dir.
func NewPriceLog(dir string) *PriceLog {
	return &PriceLog{store: NewStore(filepath.Join(dir, PricesFile), priceHeader)}
}

// Load returns every price event in append order.
func (l *PriceLog) Load() ([]model.PriceEvent, error) {
	rows, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	events := make([]model.PriceEvent, 0, len(rows))
	for i, row := range rows {
		ev, err := decodePriceRow(row)
		if err != nil {
			return nil, fmt.Errorf("price ledger row %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Append records one price event.
func (l *PriceLog) Append(ev model.PriceEvent) error {
	return l.store.Append(encodePriceRow(ev))
}

// Overwrite replaces the whole ledger with events.
func (l *PriceLog) Overwrite(events []model.PriceEvent) error {
	rows := make([][]string, len(events))
	for i, ev := range events {
		rows[i] = encodePriceRow(ev)
	}
	return l.store.Overwrite(rows)
}

// Backup archives the current ledger file under a suffix tag.
func (l *PriceLog) Backup(suffix string) (string, error) {
	return l.store.Backup(suffix)
}

// Path returns the live ledger file path.
func (l *PriceLog) Path() string {
	return l.store.Path()
}

func encodePriceRow(ev model.PriceEvent) []string {
	return []string{
		ev.Author,
		string(ev.Kind),
		strconv.Itoa(ev.Price),
		ev.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func decodePriceRow(row []string) (model.PriceEvent, error) {
	kind := model.Kind(row[1])
	if !kind.Valid() {
		return model.PriceEvent{}, fmt.Errorf("unknown kind %q", row[1])
	}
	price, err := strconv.Atoi(row[2])
	if err != nil {
		return model.PriceEvent{}, fmt.Errorf("bad price %q: %w", row[2], err)
	}
	ts, err := time.Parse(time.RFC3339Nano, row[3])
	if err != nil {
		return model.PriceEvent{}, fmt.Errorf("bad timestamp %q: %w", row[3], err)
	}
	return model.PriceEvent{
		Author:    row[0],
		Kind:      kind,
		Price:     price,
		Timestamp: ts.UTC(),
	}, nil
}
