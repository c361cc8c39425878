package timeline

import (
	"context"
	"sort"
	"time"
)

// Event is a single entry in the activity timeline. Events are built once by
// the extractor and never mutated afterwards.
type Event struct {
	Who      string
	When     time.Time
	Category string
	What     string
	URL      string
}

// Issue is a raw issue record as delivered by the issues list endpoint.
// Timestamps stay strings here; they are parsed and validated during
// extraction so a malformed value names the record it came from.
type Issue struct {
	Number    int    `json:"number"`
	State     string `json:"state"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	User      Actor  `json:"user"`
	HTMLURL   string `json:"html_url"`
}

// Comment is a raw comment record as delivered by the issue comments list
// endpoint.
type Comment struct {
	Body      string `json:"body"`
	UpdatedAt string `json:"updated_at"`
	User      Actor  `json:"user"`
	IssueURL  string `json:"issue_url"`
	HTMLURL   string `json:"html_url"`
}

// Actor identifies the account that produced a record.
type Actor struct {
	Login string `json:"login"`
}

// Source provides the two raw record collections for a repository. The HTTP
// client implements it; tests substitute an in-memory version.
type Source interface {
	FetchIssues(ctx context.Context, repo string) ([]Issue, error)
	FetchComments(ctx context.Context, repo string) ([]Comment, error)
}

// SortEvents orders events chronologically, oldest first. The sort is stable:
// events with equal timestamps keep extraction order, which is title before
// body for each issue, issues (in API order) before comments (in API order).
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].When.Before(events[j].When)
	})
}
