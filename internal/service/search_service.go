// Package service orchestrates the search pipeline: query construction,
// live fetch, result normalization, fallback selection, and region
// filtering.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonesrussell/gigfeed/internal/config"
	"github.com/jonesrussell/gigfeed/internal/domain"
	"github.com/jonesrussell/gigfeed/internal/logger"
	"github.com/jonesrussell/gigfeed/internal/sample"
	"github.com/jonesrussell/gigfeed/internal/scraper"
)

// Searcher fetches raw records for a composed search string, bounded by
// limit. Implemented by the scraper client; stubbed in tests.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.RawRecord, error)
}

// SearchService runs one blocking fetch-then-normalize-then-filter pipeline
// per user interaction. It holds no mutable state between requests.
type SearchService struct {
	scraper Searcher
	config  *config.Config
	logger  logger.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(sc Searcher, cfg *config.Config, log logger.Logger) *SearchService {
	return &SearchService{
		scraper: sc,
		config:  cfg,
		logger:  log,
	}
}

// Search executes one search interaction. The only error it returns is
// request validation; everything below that boundary degrades to the bundled
// sample dataset instead of failing visibly.
func (s *SearchService) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	startTime := time.Now()

	if err := req.Validate(s.config.Service.MaxResults, s.config.Service.DefaultResults); err != nil {
		s.logger.Warn("Invalid search request",
			logger.Error(err),
		)
		return nil, fmt.Errorf("validation error: %w", err)
	}

	locale := req.Locale
	if locale == "" {
		locale = s.config.Service.DefaultLocale
	}

	query, err := scraper.BuildQuery(req.Keywords, locale)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	s.logger.Info("Executing search",
		logger.String("query", query),
		logger.Int("max_results", req.MaxResults),
		logger.String("region", req.Region),
	)

	records, usedFallback := s.fetchRecords(ctx, query, req.MaxResults)

	total := len(records)
	filtered := filterByRegion(records, parseRegionTokens(req.Region))

	response := &domain.SearchResponse{
		Query:        query,
		UsedFallback: usedFallback,
		MatchCount:   len(filtered),
		TotalCount:   total,
		TookMs:       time.Since(startTime).Milliseconds(),
		Records:      filtered,
	}

	s.logger.Info("Search completed",
		logger.String("query", query),
		logger.Int("match_count", response.MatchCount),
		logger.Int("total_count", response.TotalCount),
		logger.Bool("used_fallback", response.UsedFallback),
		logger.Int64("took_ms", response.TookMs),
	)

	return response, nil
}

// fetchRecords attempts the live fetch and normalizes the result. A scraper
// failure and a legitimately empty result are treated identically: both
// substitute the full bundled sample set. The two causes are logged at
// different levels but deliberately collapse into one fallback signal.
func (s *SearchService) fetchRecords(ctx context.Context, query string, limit int) ([]domain.PostRecord, bool) {
	raw, err := s.scraper.Search(ctx, query, limit)
	if err != nil {
		s.logger.Warn("Live fetch failed, substituting sample data",
			logger.Error(err),
			logger.String("query", query),
		)
		return s.sampleRecords(limit), true
	}

	records, skipped := normalize(raw, limit)
	if skipped > 0 {
		s.logger.Debug("Dropped malformed records",
			logger.Int("skipped", skipped),
			logger.Int("kept", len(records)),
		)
	}

	if len(records) == 0 {
		s.logger.Info("No usable live results, substituting sample data",
			logger.String("query", query),
		)
		return s.sampleRecords(limit), true
	}

	return records, false
}

// sampleRecords normalizes the bundled dataset under the same bound as live
// results. The dataset is loaded once per process and never mutated.
func (s *SearchService) sampleRecords(limit int) []domain.PostRecord {
	raw, err := sample.Records()
	if err != nil {
		// Both sources unavailable; the presentation layer renders the
		// empty set as "no results".
		s.logger.Error("Failed to load sample dataset", logger.Error(err))
		return []domain.PostRecord{}
	}

	records, _ := normalize(raw, limit)
	return records
}

// HealthStatus reports service health for the health endpoints.
type HealthStatus struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

// Pinger checks collaborator reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck reports the scraper dependency state. The service stays
// healthy without the scraper: the fallback dataset keeps it usable.
func (s *SearchService) HealthCheck(ctx context.Context, pinger Pinger) *HealthStatus {
	status := &HealthStatus{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Version:      s.config.Service.Version,
		Dependencies: map[string]string{},
	}

	if pinger != nil {
		if err := pinger.Ping(ctx); err != nil {
			status.Dependencies["scraper"] = "down: " + err.Error()
		} else {
			status.Dependencies["scraper"] = "up"
		}
	}

	return status
}
