package service

import (
	"sort"
	"strings"

	"github.com/jonesrussell/gigfeed/internal/domain"
)

// unknownLocation buckets records without a declared location in the chart.
const unknownLocation = "Unknown"

// parseRegionTokens splits a comma-separated region filter into lowercase
// tokens. Blank entries are dropped, so ",, " behaves like no filter.
func parseRegionTokens(region string) []string {
	parts := strings.Split(region, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// filterByRegion keeps records whose location contains any region token,
// case-insensitively. An empty token list passes everything through. A
// record with an empty location cannot satisfy a region requirement and is
// excluded whenever tokens are present.
func filterByRegion(records []domain.PostRecord, tokens []string) []domain.PostRecord {
	if len(tokens) == 0 {
		return records
	}

	out := make([]domain.PostRecord, 0, len(records))
	for _, rec := range records {
		loc := strings.ToLower(rec.Location)
		if loc == "" {
			continue
		}
		for _, tok := range tokens {
			if strings.Contains(loc, tok) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// LocationCounts aggregates records per location string for the dashboard
// chart, descending by count with ties broken by name for a stable order.
// Records without a location fall into the Unknown bucket. The result is
// truncated to top entries when top is positive.
func LocationCounts(records []domain.PostRecord, top int) []domain.LocationCount {
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		loc := rec.Location
		if loc == "" {
			loc = unknownLocation
		}
		counts[loc]++
	}

	out := make([]domain.LocationCount, 0, len(counts))
	for loc, n := range counts {
		out = append(out, domain.LocationCount{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Location < out[j].Location
	})

	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}
