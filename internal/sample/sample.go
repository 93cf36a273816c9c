// Package sample bundles the static fallback dataset. The records share the
// raw-record shape of the scraper output, so they pass through the same
// normalizer as live results.
package sample

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonesrussell/gigfeed/internal/domain"
)

//go:embed data.json
var rawData []byte

var (
	once    sync.Once
	dataset []domain.RawRecord
	loadErr error
)

// Records returns the bundled dataset. It is decoded once per process and
// treated as immutable; callers receive a copy of the slice header with
// copied elements so the backing data cannot be mutated.
func Records() ([]domain.RawRecord, error) {
	once.Do(func() {
		if err := json.Unmarshal(rawData, &dataset); err != nil {
			loadErr = fmt.Errorf("decode sample dataset: %w", err)
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}

	out := make([]domain.RawRecord, len(dataset))
	copy(out, dataset)
	for i := range out {
		if out[i].User != nil {
			u := *out[i].User
			out[i].User = &u
		}
	}
	return out, nil
}
