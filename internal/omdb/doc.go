// Package omdb provides the OMDb lookup client used by BoxOffice.
//
// Two queries are exposed: Search maps a free-text query onto candidate
// titles, and GetDetails fetches the full record (including the external
// rating list) for one IMDb identifier. Neither returns an error: callers
// only ever observe "got data" or "got nothing". An empty API key is treated
// as an unconfigured client and short-circuits without network I/O, search
// failures degrade to an empty result, and detail lookups retry transport
// failures a bounded number of times before giving up. Failures are logged
// through the injected slog logger instead of being returned.
package omdb
