package timeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// ExtractIssue turns one issue record into its two timeline events.
//
// The title event carries the issue's lifecycle state: for an open issue the
// meaningful instant is its creation, for a closed one its resolution, so the
// timestamp field switches on state. The body event is always attributed to
// the creation act, with category OPEN regardless of current state.
func ExtractIssue(issue Issue) ([]Event, error) {
	field := "created_at"
	raw := issue.CreatedAt
	if issue.State != "open" {
		field = "updated_at"
		raw = issue.UpdatedAt
	}

	titleWhen, err := parseWhen(raw)
	if err != nil {
		return nil, fmt.Errorf("issue #%d: %s: %w", issue.Number, field, err)
	}

	createdWhen, err := parseWhen(issue.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("issue #%d: created_at: %w", issue.Number, err)
	}

	title := Event{
		Who:      issue.User.Login,
		When:     titleWhen,
		Category: fmt.Sprintf("%s %d", upper.String(issue.State), issue.Number),
		What:     issue.Title,
		URL:      issue.HTMLURL,
	}
	body := Event{
		Who:      issue.User.Login,
		When:     createdWhen,
		Category: fmt.Sprintf("OPEN %d", issue.Number),
		What:     issue.Body,
		URL:      issue.HTMLURL,
	}

	return []Event{title, body}, nil
}

// ExtractComment turns one comment record into a timeline event. The issue
// number is the last path segment of the comment's issue_url; that contract
// must match the upstream API shape exactly.
func ExtractComment(comment Comment) (Event, error) {
	when, err := parseWhen(comment.UpdatedAt)
	if err != nil {
		return Event{}, fmt.Errorf("comment %s: updated_at: %w", comment.HTMLURL, err)
	}

	number, err := issueNumber(comment.IssueURL)
	if err != nil {
		return Event{}, fmt.Errorf("comment %s: %w", comment.HTMLURL, err)
	}

	return Event{
		Who:      comment.User.Login,
		When:     when,
		Category: fmt.Sprintf("comment %d", number),
		What:     comment.Body,
		URL:      comment.HTMLURL,
	}, nil
}

func parseWhen(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	return t.UTC(), nil
}

func issueNumber(issueURL string) (int, error) {
	segment := issueURL[strings.LastIndex(issueURL, "/")+1:]
	number, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("invalid issue_url %q: %w", issueURL, err)
	}
	return number, nil
}
