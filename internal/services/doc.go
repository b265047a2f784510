// Package services defines shared utilities consumed by the lookup client and
// the CLI commands that drive it.
//
// Key responsibilities:
//   - Context helpers that stamp command names and correlation identifiers
//     for logging.
//   - Structured error markers plus the Wrap helper that classify failures as
//     transient (retry) or terminal (not found, configuration).
//
// Use these helpers when wiring new lookups so operational behaviour (error
// handling, observability, retries) stays uniform.
package services
