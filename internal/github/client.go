package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

const defaultBaseURL = "https://api.github.com"

// ErrRepoNotFound reports that the API answered with its error marker
// instead of a record collection, which means the repository does not exist
// (or is not visible with the current credentials).
var ErrRepoNotFound = errors.New("repository not found")

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// Unauthenticated callers get 60 requests an hour; one request a
		// second keeps bursts of invocations under the secondary limits.
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// apiError is the shape GitHub returns instead of a collection when a request
// misses: a message plus a documentation_url marker.
type apiError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// ListIssues fetches the first page of issues for repo, all states,
// descending, at the maximum page size.
func (c *Client) ListIssues(ctx context.Context, repo string) ([]timeline.Issue, error) {
	var issues []timeline.Issue
	if err := c.list(ctx, fmt.Sprintf("/repos/%s/issues", repo), &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// ListIssueComments fetches the first page of issue comments for repo with
// the same query parameters as ListIssues.
func (c *Client) ListIssueComments(ctx context.Context, repo string) ([]timeline.Comment, error) {
	var comments []timeline.Comment
	if err := c.list(ctx, fmt.Sprintf("/repos/%s/issues/comments", repo), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) list(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	url := fmt.Sprintf("%s%s?state=all&direction=desc&per_page=100", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// An error body carries documentation_url where a collection was
	// expected; that is the only existence signal the API gives us.
	var marker apiError
	if json.Unmarshal(body, &marker) == nil && marker.DocumentationURL != "" {
		return fmt.Errorf("%w: GET %s: %s", ErrRepoNotFound, path, marker.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
