package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jonesrussell/gigfeed/internal/domain"
)

// csvHeader is the six-field row schema, matching the JSON field names.
var csvHeader = []string{"display_name", "handle", "created_at", "text", "location", "url"}

// WriteCSV serializes records as delimited text: header plus one row per
// record. Timestamps are RFC 3339; a zero timestamp serializes as empty.
func WriteCSV(w io.Writer, records []domain.PostRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range records {
		rec := &records[i]
		created := ""
		if !rec.CreatedAt.IsZero() {
			created = rec.CreatedAt.Format(time.RFC3339)
		}
		row := []string{rec.DisplayName, rec.Handle, created, rec.Text, rec.Location, rec.URL}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
