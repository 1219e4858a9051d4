// Package database builds the Postgres connection pool used by the ledger
// exporter. The bot itself never touches the database; the CSV ledgers
// remain the source of truth.
package database
