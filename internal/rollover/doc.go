// Package rollover performs the weekly price-ledger reset: archive the
// live ledger to a dated backup, then prune it down to each user's single
// most recent buy event. The backup always lands before any destructive
// write, so a failure mid-reset leaves the archive intact and the live
// ledger either untouched or fully rolled over.
package rollover
