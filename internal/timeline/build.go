package timeline

import (
	"context"
	"fmt"
)

// Builder assembles the sorted timeline for a repository from a Source.
type Builder struct {
	Source Source
}

func NewBuilder(source Source) *Builder {
	return &Builder{Source: source}
}

// Build fetches both record collections, extracts their events and returns
// them in chronological order. Any unparseable record aborts the whole
// build; a partial timeline is never returned.
func (b *Builder) Build(ctx context.Context, repo string) ([]Event, error) {
	issues, err := b.Source.FetchIssues(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching issues: %w", err)
	}

	comments, err := b.Source.FetchComments(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}

	events := make([]Event, 0, 2*len(issues)+len(comments))

	for _, issue := range issues {
		pair, err := ExtractIssue(issue)
		if err != nil {
			return nil, err
		}
		events = append(events, pair...)
	}

	for _, comment := range comments {
		event, err := ExtractComment(comment)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	SortEvents(events)
	return events, nil
}
