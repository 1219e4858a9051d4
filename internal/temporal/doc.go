// Package temporal answers time-windowed and aggregate queries over the
// price ledger.
//
// All selection happens on UTC instants; converting timestamps into a
// user's timezone is a presentation step applied after selection. "Now" is
// resolved through the Clock interface so tests can pin it.
package temporal
