// Package render draws the price graph artifacts requested by the graph
// and lastweek commands. The output contract is small on purpose: rows in,
// image file out, so the implementation can be swapped for a richer
// renderer without touching the command core.
package render
