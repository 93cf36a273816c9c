package domain

import "time"

// RawUser is the author sub-object of a raw scraper record.
type RawUser struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayname"`
	Location    string `json:"location"`
}

// RawRecord is an unvalidated row as returned by the external scraping
// collaborator. The shape is not guaranteed; every field is validated at the
// normalizer boundary before it reaches a PostRecord.
type RawRecord struct {
	ID         int64    `json:"id"`
	Date       string   `json:"date"`
	Content    string   `json:"content"`
	RawContent string   `json:"rawContent"`
	URL        string   `json:"url"`
	User       *RawUser `json:"user"`
}

// Text returns the record body, preferring the rendered content field over
// the raw one, matching what the scraper populates for older records.
func (r *RawRecord) Text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.RawContent
}

// PostRecord is the normalized, validated row schema used throughout the
// service. Every field is populated: location may be empty, the URL never is
// (records that cannot be linked back to source are dropped, not emitted).
type PostRecord struct {
	DisplayName string    `json:"display_name"`
	Handle      string    `json:"handle"`
	CreatedAt   time.Time `json:"created_at"`
	Text        string    `json:"text"`
	Location    string    `json:"location"`
	URL         string    `json:"url"`
}
