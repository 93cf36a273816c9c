package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonesrussell/gigfeed/internal/domain"
)

// postURLFormat links a normalized record back to the original post.
const postURLFormat = "https://twitter.com/%s/status/%d"

// normalize maps raw scraper records into at most limit post records,
// preserving source order (assumed chronological-descending; no re-sort).
// Records missing the author display name, handle, body text, or a numeric
// post id are dropped silently; skipped reports how many. Dropping never
// raises an error, so the output may be smaller than limit.
func normalize(raw []domain.RawRecord, limit int) (records []domain.PostRecord, skipped int) {
	records = make([]domain.PostRecord, 0, min(len(raw), limit))
	for i := range raw {
		if len(records) >= limit {
			break
		}
		rec, ok := normalizeRecord(&raw[i])
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// normalizeRecord validates one raw record field-by-field and builds the
// post record. The URL is synthesized from the bare handle and the post id;
// a record that cannot be linked back to source is not emitted.
func normalizeRecord(raw *domain.RawRecord) (domain.PostRecord, bool) {
	if raw.User == nil {
		return domain.PostRecord{}, false
	}

	handle := strings.TrimPrefix(strings.TrimSpace(raw.User.Username), "@")
	name := strings.TrimSpace(raw.User.DisplayName)
	text := raw.Text()

	if handle == "" || name == "" || text == "" || raw.ID == 0 {
		return domain.PostRecord{}, false
	}

	return domain.PostRecord{
		DisplayName: name,
		Handle:      "@" + handle,
		CreatedAt:   parseTimestamp(raw.Date),
		Text:        text,
		Location:    strings.TrimSpace(raw.User.Location),
		URL:         fmt.Sprintf(postURLFormat, handle, raw.ID),
	}, true
}

// parseTimestamp parses an RFC 3339 timestamp preserving the source offset.
// The timestamp is not in the required-field set, so failures yield a zero
// time instead of dropping the record.
func parseTimestamp(value string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}
	}
	return ts
}
