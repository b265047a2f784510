package omdb

import (
	"context"
	"net/url"
	"strings"

	"boxoffice/internal/logging"
	"boxoffice/internal/services"
)

// GetDetails fetches the full record for externalID. It returns nil when the
// API key is missing, when OMDb answers with Response "False", or when every
// attempt failed at the transport level. Only transport failures are retried;
// an explicit upstream failure is final after one request.
func (c *Client) GetDetails(ctx context.Context, externalID, apiKey string) *DetailRecord {
	logger := logging.WithContext(ctx, c.logger).With(logging.String("external_id", externalID))
	if strings.TrimSpace(apiKey) == "" {
		logger.Debug("omdb details skipped; api key not configured")
		return nil
	}

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		record, err := c.fetchDetails(ctx, externalID, apiKey)
		if err == nil {
			logger.Debug("omdb details fetched",
				logging.Int("attempt", attempt),
				logging.Int("ratings", len(record.Ratings)),
			)
			return record
		}
		if !services.Retryable(err) {
			logging.WarnWithContext(ctx, c.logger, "omdb details unavailable",
				"omdb_details_not_found",
				logging.String("external_id", externalID),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "verify the IMDb identifier"),
				logging.String(logging.FieldImpact, "no details shown"),
			)
			return nil
		}

		logging.WarnWithContext(ctx, c.logger, "omdb details request failed",
			"omdb_details_attempt_failed",
			logging.String("external_id", externalID),
			logging.Int("attempt", attempt),
			logging.Int("max_attempts", c.maxAttempts),
			logging.Error(err),
			logging.String(logging.FieldImpact, "retrying while attempts remain"),
		)
		if attempt == c.maxAttempts {
			break
		}
		if err := sleepWithContext(ctx, c.backoff); err != nil {
			logger.Debug("omdb details retry cancelled", logging.Error(err))
			return nil
		}
	}

	logging.ErrorWithContext(ctx, c.logger, "omdb details failed after retries",
		"omdb_details_retries_exhausted",
		logging.String("external_id", externalID),
		logging.Int("attempts", c.maxAttempts),
		logging.String(logging.FieldErrorHint, "check network access and the omdb.base_url setting"),
	)
	return nil
}

func (c *Client) fetchDetails(ctx context.Context, externalID, apiKey string) (*DetailRecord, error) {
	params := url.Values{}
	params.Set("apikey", apiKey)
	params.Set("i", externalID)
	params.Set("plot", "full")
	params.Set("tomatoes", "true")

	var record DetailRecord
	if err := c.get(ctx, "details", params, &record); err != nil {
		return nil, err
	}
	if !record.decoded() {
		return nil, services.Wrap(services.ErrTransient, "omdb", "details", "empty response body", nil)
	}
	if !record.succeeded() {
		message := strings.TrimSpace(record.Error)
		if message == "" {
			message = "response flag " + record.Response
		}
		return nil, services.Wrap(services.ErrNotFound, "omdb", "details", message, nil)
	}
	return &record, nil
}
