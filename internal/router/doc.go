// Package router resolves free-text chat input into a recognized command
// and dispatches it.
//
// Matching rules: an exact vocabulary match wins immediately; otherwise
// every command the token is a prefix of is a candidate. Zero candidates is
// an unknown-command reply, one candidate dispatches, several candidates
// produce a disambiguation prompt. Messages from the bot itself, from
// channels off the allow-list, from non-text channels, or carrying nothing
// after the marker are ignored outright.
package router
