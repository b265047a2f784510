package omdb

import (
	"context"
	"net/url"
	"strings"

	"boxoffice/internal/logging"
)

// Search looks up titles matching query. It never fails: a missing API key,
// a transport error, or a malformed payload all yield an empty slice so
// callers can render "no results" without an error branch.
func (c *Client) Search(ctx context.Context, query, apiKey string, opts SearchOptions) []SearchResult {
	logger := logging.WithContext(ctx, c.logger)
	if strings.TrimSpace(apiKey) == "" {
		logger.Debug("omdb search skipped; api key not configured")
		return []SearchResult{}
	}
	if strings.TrimSpace(query) == "" {
		logger.Debug("omdb search skipped; empty query")
		return []SearchResult{}
	}

	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("s", query)
	if mediaType := strings.TrimSpace(opts.MediaType); mediaType != "" {
		params.Set("type", mediaType)
	}
	if year := strings.TrimSpace(opts.Year); year != "" {
		params.Set("y", year)
	}

	var payload searchResponse
	if err := c.get(ctx, "search", params, &payload); err != nil {
		logging.WarnWithContext(ctx, c.logger, "omdb search failed",
			"omdb_search_failed",
			logging.String("query", query),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check network access and the omdb.base_url setting"),
			logging.String(logging.FieldImpact, "search shows no results"),
		)
		return []SearchResult{}
	}

	if payload.Search == nil {
		logger.Debug("omdb search returned no matches",
			logging.String("query", query),
			logging.String("upstream_error", payload.Error),
		)
		return []SearchResult{}
	}

	results := make([]SearchResult, 0, len(payload.Search))
	for _, item := range payload.Search {
		if strings.TrimSpace(item.ImdbID) == "" {
			continue
		}
		results = append(results, toSearchResult(item))
	}
	logger.Debug("omdb search complete",
		logging.String("query", query),
		logging.Int("results", len(results)),
	)
	return results
}
