// Package config loads, normalizes, and validates clipbatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours CLIPBATCH_* environment
// overrides (optionally sourced from a .env file). Always obtain settings
// through this package so downstream code receives sanitized paths,
// canonical extensions, and clear validation errors.
package config
