// Package export bulk-copies the CSV ledgers into Postgres for offline
// analytics. The export is one-shot and additive-only; it never writes
// back to the ledgers.
package export
