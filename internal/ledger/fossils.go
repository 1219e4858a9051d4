package ledger

import (
	"path/filepath"

	"github.com/stalkmarket/stalkbot/internal/model"
)

// FossilsFile is the base name of the collection ledger inside the data dir.
const FossilsFile = "fossils.csv"

var fossilHeader = []string{"author", "name"}

// FossilLog is the typed facade over the collection ledger. An item is
// collected by a user when a row for the pair exists.
type FossilLog struct {
	store *Store
}

// NewFossilLog opens the collection ledger under dir.
func NewFossilLog(dir string) *FossilLog {
	return &FossilLog{store: NewStore(filepath.Join(dir, FossilsFile), fossilHeader)}
}

// Load returns every collection event in append order.
func (l *FossilLog) Load() ([]model.CollectionEvent, error) {
	rows, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	events := make([]model.CollectionEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, model.CollectionEvent{Author: row[0], Name: row[1]})
	}
	return events, nil
}

// Append records one collection event. Callers are responsible for the
// set semantics; duplicates are not rejected here.
func (l *FossilLog) Append(ev model.CollectionEvent) error {
	return l.store.Append([]string{ev.Author, ev.Name})
}

// Overwrite replaces the whole ledger with events.
func (l *FossilLog) Overwrite(events []model.CollectionEvent) error {
	rows := make([][]string, len(events))
	for i, ev := range events {
		rows[i] = []string{ev.Author, ev.Name}
	}
	return l.store.Overwrite(rows)
}

// Collected returns the set of item names the given user has collected.
func (l *FossilLog) Collected(author string) (map[string]bool, error) {
	events, err := l.Load()
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool)
	for _, ev := range events {
		if ev.Author == author {
			have[ev.Name] = true
		}
	}
	return have, nil
}
