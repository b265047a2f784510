// Package config loads, normalizes, and validates BoxOffice configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the OMDB_API_KEY environment
// fallback. A missing API key is a valid, unconfigured state: lookups simply
// return nothing until a key is provided.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
