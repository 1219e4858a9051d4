package model

import "time"

// -----------------------------------------------------------------------------
// Price Ledger Types
// -----------------------------------------------------------------------------

// Kind distinguishes the two sides of a logged turnip price.
type Kind string

const (
	// KindBuy is a morning price offered by the island's buyer.
	KindBuy Kind = "buy"

	// KindSell is a price the shop will pay for turnips.
	KindSell Kind = "sell"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindBuy || k == KindSell
}

// PriceEvent is one appended row of the price ledger. Events are immutable
// once appended; they are only ever bulk-removed (clear, oops, rollover).
type PriceEvent struct {
	Author    string    // User id that logged the price
	Kind      Kind      // "buy" or "sell"
	Price     int       // Positive integer bells
	Timestamp time.Time // Append time, UTC
}

// -----------------------------------------------------------------------------
// Collection Ledger Types
// -----------------------------------------------------------------------------

// CollectionEvent marks a single collectible as donated by a user.
// The ledger has set semantics per (Author, Name) pair.
type CollectionEvent struct {
	Author string // User id
	Name   string // Canonical lowercase item name
}

// -----------------------------------------------------------------------------
// User Preference Types
// -----------------------------------------------------------------------------

// Hemisphere selects which half of the creature availability calendar
// applies to a user.
type Hemisphere string

const (
	HemisphereNorthern Hemisphere = "northern"
	HemisphereSouthern Hemisphere = "southern"

	// HemisphereUnset is the zero value for users who never registered one.
	HemisphereUnset Hemisphere = ""
)

// ParseHemisphere normalizes free-text input to a Hemisphere.
func ParseHemisphere(s string) (Hemisphere, bool) {
	switch Hemisphere(s) {
	case HemisphereNorthern:
		return HemisphereNorthern, true
	case HemisphereSouthern:
		return HemisphereSouthern, true
	}
	return HemisphereUnset, false
}

// UserPreference is the authoritative preference row for a user. The
// preference ledger is append-only; the latest row per author wins.
type UserPreference struct {
	Author     string     // User id
	Hemisphere Hemisphere // Empty when unset
	Timezone   string     // IANA zone name, empty when unset
}

// Location resolves the user's timezone, defaulting to UTC when unset or
// unloadable.
func (p UserPreference) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
