package service

// Exported for external tests.
var (
	Normalize         = normalize
	NormalizeRecord   = normalizeRecord
	ParseRegionTokens = parseRegionTokens
	FilterByRegion    = filterByRegion
)
