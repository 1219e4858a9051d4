// Package catalog holds the static reference data: the set of donatable
// fossil names and the creature availability calendar. Everything here is
// built once and never mutated; handlers receive the catalog by reference.
package catalog
