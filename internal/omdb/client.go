// Package omdb looks movie ratings up on the OMDb API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cinelist/cinelist-api/internal/domain"
)

const DefaultBaseURL = "https://www.omdbapi.com"

// notAvailable is OMDb's own marker for a missing field.
const notAvailable = "N/A"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

type ratingResponse struct {
	ImdbRating string `json:"imdbRating"`
	ImdbVotes  string `json:"imdbVotes"`
}

// MovieRating fetches the IMDb rating and vote count for an IMDb title ID.
// A non-200 response or OMDb's "N/A" marker on either field means the title
// has no usable rating and yields (nil, nil). Only transport failures are
// errors.
func (c *Client) MovieRating(ctx context.Context, imdbID string) (*domain.Rating, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)

	ratingURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ratingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rating request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("rating lookup failed", "imdb_id", imdbID, "status", resp.StatusCode)
		return nil, nil
	}

	var rating ratingResponse
	if err := json.NewDecoder(resp.Body).Decode(&rating); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if rating.ImdbRating == notAvailable || rating.ImdbVotes == notAvailable {
		return nil, nil
	}

	return &domain.Rating{
		Rating: rating.ImdbRating,
		Votes:  rating.ImdbVotes,
	}, nil
}
