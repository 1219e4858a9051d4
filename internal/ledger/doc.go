// Package ledger implements the durable flat-file stores behind stalkbot.
//
// Each ledger is a single UTF-8 CSV file whose first line names its columns.
// A missing file reads as an empty ledger. Appends go straight to the end of
// the file; overwrites go through a temp file and rename so readers never
// observe a half-written ledger. Every operation on one store is serialized
// by a per-store mutex.
package ledger
