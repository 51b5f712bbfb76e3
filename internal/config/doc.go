// Package config loads, normalizes, and validates podium configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and lets users override the analysis word
// lists and thresholds without rebuilding. The Config type centralizes every
// knob the CLI and watch mode need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, deduplicated word lists, and clear validation errors.
package config
