package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

// Source adapts the API client to the timeline.Source capability.
type Source struct {
	Client *Client
}

func NewSource(token, baseURL string) *Source {
	return &Source{Client: NewClient(token, baseURL)}
}

var _ timeline.Source = (*Source)(nil)

func (s *Source) FetchIssues(ctx context.Context, repo string) ([]timeline.Issue, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	return s.Client.ListIssues(ctx, repo)
}

func (s *Source) FetchComments(ctx context.Context, repo string) ([]timeline.Comment, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	return s.Client.ListIssueComments(ctx, repo)
}

// ValidateRepo checks the owner/name shape only; whether the repository
// exists is decided by the API response.
func ValidateRepo(repo string) error {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return nil
}
