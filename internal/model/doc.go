// Package model defines the ledger record types shared across stalkbot.
//
// Conventions:
//   - Prices: positive integer bells
//   - Timestamps: time.Time in UTC; conversion to a user's timezone is a
//     presentation step and never happens before selection
//   - Authors: chat user ids as opaque strings
package model
