package ledger

import (
	"path/filepath"

	"github.com/stalkmarket/stalkbot/internal/model"
)

// UsersFile is the base name of the preference ledger inside the data dir.
const UsersFile = "users.csv"

var prefHeader = []string{"author", "hemisphere", "timezone"}

// PrefLog is the typed facade over the user preference ledger. Rows are
// appended, never rewritten; the latest row per author is authoritative.
type PrefLog struct {
	store *Store
}

// NewPrefLog opens the preference ledger under dir.
func NewPrefLog(dir string) *PrefLog {
	return &PrefLog{store: NewStore(filepath.Join(dir, UsersFile), prefHeader)}
}

// Load returns every preference row in append order, superseded rows
// included.
func (l *PrefLog) Load() ([]model.UserPreference, error) {
	rows, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	prefs := make([]model.UserPreference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, model.UserPreference{
			Author:     row[0],
			Hemisphere: model.Hemisphere(row[1]),
			Timezone:   row[2],
		})
	}
	return prefs, nil
}

// Current reduces the ledger to the authoritative row per author.
func (l *PrefLog) Current() (map[string]model.UserPreference, error) {
	prefs, err := l.Load()
	if err != nil {
		return nil, err
	}
	current := make(map[string]model.UserPreference)
	for _, p := range prefs {
		current[p.Author] = p
	}
	return current, nil
}

// For returns the authoritative preference row for one author, zero-valued
// when the user never registered anything.
func (l *PrefLog) For(author string) (model.UserPreference, error) {
	current, err := l.Current()
	if err != nil {
		return model.UserPreference{}, err
	}
	p, ok := current[author]
	if !ok {
		return model.UserPreference{Author: author}, nil
	}
	return p, nil
}

// SetHemisphere upserts only the hemisphere field, preserving the user's
// timezone.
func (l *PrefLog) SetHemisphere(author string, h model.Hemisphere) error {
	p, err := l.For(author)
	if err != nil {
		return err
	}
	p.Hemisphere = h
	return l.append(p)
}

// SetTimezone upserts only the timezone field, preserving the user's
// hemisphere.
func (l *PrefLog) SetTimezone(author, zone string) error {
	p, err := l.For(author)
	if err != nil {
		return err
	}
	p.Timezone = zone
	return l.append(p)
}

func (l *PrefLog) append(p model.UserPreference) error {
	return l.store.Append([]string{p.Author, string(p.Hemisphere), p.Timezone})
}
