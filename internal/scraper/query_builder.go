package scraper

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/gigfeed/internal/domain"
)

const (
	// defaultLocale is used when a request does not name a language.
	defaultLocale = "en"

	// excludeClauses keeps retweets and replies out of every search;
	// duplicated and conversational posts are never job leads.
	excludeClauses = "exclude:retweets exclude:replies"
)

// BuildQuery composes the platform search string from a keyword expression
// (platform search-operator syntax, e.g. quoted phrases joined with OR) and
// an optional locale code. The exclusion clauses are fixed. Pure string
// composition; fails only on an empty keyword expression.
func BuildQuery(keywords, locale string) (string, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return "", domain.ErrInvalidQuery
	}

	if locale == "" {
		locale = defaultLocale
	}

	return fmt.Sprintf("%s %s lang:%s", keywords, excludeClauses, locale), nil
}
