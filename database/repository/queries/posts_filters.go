package queries

import (
	"strings"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/pkg/portal"
)

// PostFilters carries the raw, untrusted search parameters for the posts
// surface. Build turns them into a Predicate; nothing here touches the
// database.
type PostFilters struct {
	Query        string // case-insensitive match against title/excerpt/content
	Category     string // category slug, exact match
	Author       string // author name, case-insensitive partial match
	DateFrom     string
	DateTo       string
	Status       string
	CategoryUUID string
	AuthorUUID   string

	// AnyStatus lifts the published-only constraint for management surfaces.
	// Callers must gate it behind an authorisation check.
	AnyStatus bool
}

func (f PostFilters) GetQuery() string {
	return f.sanitiseString(f.Query)
}

func (f PostFilters) GetCategory() string {
	return f.sanitiseString(f.Category)
}

func (f PostFilters) GetAuthor() string {
	return f.sanitiseString(f.Author)
}

func (f PostFilters) GetStatus() string {
	return strings.ToUpper(strings.TrimSpace(f.Status))
}

func (f PostFilters) sanitiseString(seed string) string {
	str := portal.MakeStringable(seed)

	return strings.TrimSpace(str.ToLower())
}

// Predicate is the structured filter description handed to the store layer:
// an AND of leaf constraints, with Text expanding into an OR group across
// title, excerpt and content.
type Predicate struct {
	Text          string
	CategorySlug  string
	AuthorName    string
	CategoryUUID  string
	AuthorUUID    string
	Status        database.PostStatus
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	PublishedOnly bool
}

// Build validates the filters and produces the predicate. Invalid dates fail
// with a ValidationError; an unknown status is ignored on listing surfaces
// rather than treated as an error.
func (f PostFilters) Build() (*Predicate, error) {
	predicate := Predicate{
		Text:          f.GetQuery(),
		CategorySlug:  f.GetCategory(),
		AuthorName:    f.GetAuthor(),
		CategoryUUID:  strings.TrimSpace(f.CategoryUUID),
		AuthorUUID:    strings.TrimSpace(f.AuthorUUID),
		PublishedOnly: !f.AnyStatus,
	}

	if status := database.PostStatus(f.GetStatus()); status.IsValid() {
		predicate.Status = status
	}

	if from := strings.TrimSpace(f.DateFrom); from != "" {
		parsed, err := portal.MakeStringable(from).ToDate()
		if err != nil {
			return nil, &ValidationError{Field: "dateFrom", Message: "expected YYYY-MM-DD"}
		}

		predicate.PublishedFrom = parsed
	}

	if to := strings.TrimSpace(f.DateTo); to != "" {
		parsed, err := portal.MakeStringable(to).ToDate()
		if err != nil {
			return nil, &ValidationError{Field: "dateTo", Message: "expected YYYY-MM-DD"}
		}

		predicate.PublishedTo = parsed
	}

	if predicate.PublishedFrom != nil && predicate.PublishedTo != nil {
		if predicate.PublishedTo.Before(*predicate.PublishedFrom) {
			return nil, &ValidationError{Field: "dateTo", Message: "must not precede dateFrom"}
		}
	}

	return &predicate, nil
}
