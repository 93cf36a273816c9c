package domain_test

import (
	"errors"
	"testing"

	"github.com/jonesrussell/gigfeed/internal/domain"
)

const (
	testMaxResults     = 500
	testDefaultResults = 120
)

func TestSearchRequest_Validate_Defaults(t *testing.T) {
	req := &domain.SearchRequest{
		Keywords: `"ux designer" OR "ui designer"`,
	}

	if err := req.Validate(testMaxResults, testDefaultResults); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	if req.MaxResults != testDefaultResults {
		t.Errorf("Validate() max_results = %d, want %d", req.MaxResults, testDefaultResults)
	}
}

func TestSearchRequest_Validate_EmptyKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"tabs and newlines", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &domain.SearchRequest{Keywords: tt.keywords, Locale: "en"}
			err := req.Validate(testMaxResults, testDefaultResults)
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("Validate() error = %v, want ErrInvalidQuery", err)
			}
		})
	}
}

func TestSearchRequest_Validate_MaxResults(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		wantMax int
		wantErr bool
	}{
		{"explicit value kept", 40, 40, false},
		{"zero defaulted", 0, testDefaultResults, false},
		{"negative defaulted", -10, testDefaultResults, false},
		{"at bound", testMaxResults, testMaxResults, false},
		{"above bound rejected", testMaxResults + 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &domain.SearchRequest{Keywords: "hiring designer", MaxResults: tt.max}
			err := req.Validate(testMaxResults, testDefaultResults)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && req.MaxResults != tt.wantMax {
				t.Errorf("Validate() max_results = %d, want %d", req.MaxResults, tt.wantMax)
			}
		})
	}
}

func TestRawRecord_Text(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.RawRecord
		want string
	}{
		{"content preferred", domain.RawRecord{Content: "a", RawContent: "b"}, "a"},
		{"raw content fallback", domain.RawRecord{RawContent: "b"}, "b"},
		{"both empty", domain.RawRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
