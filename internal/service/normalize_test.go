package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jonesrussell/gigfeed/internal/domain"
	"github.com/jonesrussell/gigfeed/internal/service"
)

func rawRecord(id int64, handle, name, text, location string) domain.RawRecord {
	return domain.RawRecord{
		ID:      id,
		Date:    "2026-08-20T10:15:00+05:30",
		Content: text,
		User: &domain.RawUser{
			Username:    handle,
			DisplayName: name,
			Location:    location,
		},
	}
}

func TestNormalize_RespectsLimit(t *testing.T) {
	raw := make([]domain.RawRecord, 10)
	for i := range raw {
		raw[i] = rawRecord(int64(i+1), "user", "User", "hiring designer", "Remote")
	}

	for _, limit := range []int{0, 1, 5, 10, 50} {
		records, skipped := service.Normalize(raw, limit)
		if len(records) > limit {
			t.Errorf("normalize(limit=%d) returned %d records", limit, len(records))
		}
		if skipped != 0 {
			t.Errorf("normalize(limit=%d) skipped = %d, want 0", limit, skipped)
		}
	}
}

func TestNormalize_PreservesSourceOrder(t *testing.T) {
	raw := []domain.RawRecord{
		rawRecord(3, "c_user", "C", "third", ""),
		rawRecord(2, "b_user", "B", "second", ""),
		rawRecord(1, "a_user", "A", "first", ""),
	}

	records, _ := service.Normalize(raw, 10)
	if len(records) != 3 {
		t.Fatalf("normalize() returned %d records, want 3", len(records))
	}
	for i, wantName := range []string{"C", "B", "A"} {
		if records[i].DisplayName != wantName {
			t.Errorf("records[%d].DisplayName = %q, want %q (order not preserved)", i, records[i].DisplayName, wantName)
		}
	}
}

func TestNormalize_DropsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		raw  domain.RawRecord
	}{
		{"missing user object", domain.RawRecord{ID: 1, Content: "text"}},
		{"missing handle", rawRecord(1, "", "Name", "text", "")},
		{"missing display name", rawRecord(1, "handle", "", "text", "")},
		{"missing text", rawRecord(1, "handle", "Name", "", "")},
		{"missing post id", rawRecord(0, "handle", "Name", "text", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, skipped := service.Normalize([]domain.RawRecord{tt.raw}, 10)
			if len(records) != 0 {
				t.Errorf("normalize() kept malformed record: %+v", records[0])
			}
			if skipped != 1 {
				t.Errorf("normalize() skipped = %d, want 1", skipped)
			}
		})
	}
}

func TestNormalize_OutputNeverHasEmptyURL(t *testing.T) {
	raw := []domain.RawRecord{
		rawRecord(1700000000000000001, "aditidesigns", "Aditi Sharma", "Hiring!", "Bengaluru"),
		rawRecord(0, "nobody", "No ID", "dropped", ""),
		{ID: 2, Content: "no user"},
	}

	records, skipped := service.Normalize(raw, 10)
	if skipped != 2 {
		t.Errorf("normalize() skipped = %d, want 2", skipped)
	}
	for _, rec := range records {
		if rec.URL == "" {
			t.Errorf("record %q has empty URL", rec.Handle)
		}
	}
}

func TestNormalizeRecord_Fields(t *testing.T) {
	raw := rawRecord(1700000000000000001, "@aditidesigns", "Aditi Sharma", "Hiring UI/UX designer", "Bengaluru, India")

	rec, ok := service.NormalizeRecord(&raw)
	if !ok {
		t.Fatal("normalizeRecord() dropped a well-formed record")
	}

	if rec.Handle != "@aditidesigns" {
		t.Errorf("Handle = %q, want single leading @", rec.Handle)
	}
	wantURL := "https://twitter.com/aditidesigns/status/1700000000000000001"
	if rec.URL != wantURL {
		t.Errorf("URL = %q, want %q", rec.URL, wantURL)
	}
	if rec.Location != "Bengaluru, India" {
		t.Errorf("Location = %q", rec.Location)
	}

	// Source offset preserved
	_, offset := rec.CreatedAt.Zone()
	if offset != 5*3600+30*60 {
		t.Errorf("CreatedAt offset = %d, want +05:30 preserved", offset)
	}
}

func TestNormalizeRecord_MissingLocationDefaultsEmpty(t *testing.T) {
	raw := rawRecord(5, "handle", "Name", "text", "")

	rec, ok := service.NormalizeRecord(&raw)
	if !ok {
		t.Fatal("normalizeRecord() dropped record with empty location")
	}
	if rec.Location != "" {
		t.Errorf("Location = %q, want empty", rec.Location)
	}
}

func TestNormalizeRecord_BadTimestampKeptAsZero(t *testing.T) {
	raw := rawRecord(5, "handle", "Name", "text", "Remote")
	raw.Date = "yesterday-ish"

	rec, ok := service.NormalizeRecord(&raw)
	if !ok {
		t.Fatal("normalizeRecord() dropped record over unparseable timestamp")
	}
	if !rec.CreatedAt.Equal(time.Time{}) {
		t.Errorf("CreatedAt = %v, want zero time", rec.CreatedAt)
	}
}

func TestNormalizeRecord_RawContentFallback(t *testing.T) {
	raw := rawRecord(5, "handle", "Name", "", "Remote")
	raw.RawContent = "older record body"

	rec, ok := service.NormalizeRecord(&raw)
	if !ok {
		t.Fatal("normalizeRecord() dropped record with rawContent body")
	}
	if !strings.Contains(rec.Text, "older record body") {
		t.Errorf("Text = %q, want rawContent fallback", rec.Text)
	}
}
