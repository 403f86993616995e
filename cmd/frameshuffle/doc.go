// Package main hosts the frameshuffle CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// redistribution runs, dry-run plans, and configuration scaffolding. It
// centralizes configuration resolution and logger setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
