// Package bot wires the command router, ledgers, temporal engine, catalog
// and paginator into the running chat bot, and implements every command
// handler.
//
// Handlers report argument and state problems as reply text; the only
// errors they log as faults are ledger I/O failures, which abort the
// triggering operation without touching prior state.
package bot
