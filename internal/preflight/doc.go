// Package preflight validates the filesystem environment before a run
// touches anything.
//
// The checks fail fast: a missing or unreadable source, a non-empty or
// unwritable destination, or insufficient free space each abort the run
// before a single byte is copied. The empty-destination requirement also
// doubles as a coarse guard against two runs mixing output in the same
// location.
package preflight
