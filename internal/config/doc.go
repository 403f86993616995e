// Package config loads, normalizes, and validates frameshuffle
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// a run needs: source and destination directories, the per-folder capacity
// ceilings, and logging setup.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
