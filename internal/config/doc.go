// Package config loads, normalizes, and validates Shoebox configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SHOEBOX_PHOTOS_FILE. The Config type centralizes every knob the CLI needs:
// where the two catalog documents live, where session logs go, and how they
// are formatted.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
