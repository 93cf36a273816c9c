package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuery is returned when a search request carries no keyword
// expression. It is the only error surfaced to the user by the search
// pipeline; everything below the query boundary degrades to sample data.
var ErrInvalidQuery = errors.New("keyword expression must not be empty")

// SearchRequest represents one dashboard search interaction.
type SearchRequest struct {
	// Keywords is a platform search-operator expression, e.g. quoted
	// phrases joined with OR.
	Keywords string `json:"keywords"`
	// Locale restricts results to one language; empty means the
	// configured default.
	Locale string `json:"locale,omitempty"`
	// MaxResults bounds the live fetch.
	MaxResults int `json:"max_results,omitempty"`
	// Region is an optional comma-separated list of region tokens matched
	// case-insensitively against record locations.
	Region string `json:"region,omitempty"`
}

// Validate checks the request and applies defaults. MaxResults is defaulted
// when unset and rejected when above the service bound.
func (req *SearchRequest) Validate(maxResults, defaultResults int) error {
	if strings.TrimSpace(req.Keywords) == "" {
		return ErrInvalidQuery
	}

	if req.MaxResults < 1 {
		req.MaxResults = defaultResults
	}
	if req.MaxResults > maxResults {
		return fmt.Errorf("max_results exceeds maximum of %d", maxResults)
	}

	return nil
}

// SearchResponse is the final row set handed to the presentation layer.
type SearchResponse struct {
	Query        string       `json:"query"`
	UsedFallback bool         `json:"used_fallback"`
	MatchCount   int          `json:"match_count"`
	TotalCount   int          `json:"total_count"`
	TookMs       int64        `json:"took_ms"`
	Records      []PostRecord `json:"records"`
}

// LocationCount is one bar of the per-location aggregation chart.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}
