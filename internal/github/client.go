// Package github provides a minimal GitHub REST client for listing a user's
// repositories with the language and topic metadata the ranking layer needs.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-analyzer/internal/types"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "JobAnalyzer/1.0"
	reposPerPage     = 100
	maxPages         = 5
	languageFetchers = 5
)

// Error represents a GitHub API failure
type Error struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github request failed for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("github request failed for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client talks to the GitHub REST API v3.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a GitHub client. The token is optional; unauthenticated
// requests work but are subject to much lower rate limits.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// NewClientWithBaseURL creates a client against a custom API endpoint (tests,
// GitHub Enterprise).
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// apiRepository mirrors the fields of the repository listing response we use.
type apiRepository struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	HTMLURL     string   `json:"html_url"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stargazers_count"`
	Fork        bool     `json:"fork"`
}

// ListUserRepositories fetches the public repositories of a user, including
// per-repository language byte counts. Forks are skipped.
func (c *Client) ListUserRepositories(ctx context.Context, username string) ([]types.RepositorySummary, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	var all []apiRepository
	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d&sort=updated", c.baseURL, username, reposPerPage, page)

		var batch []apiRepository
		if err := c.getJSON(ctx, url, &batch); err != nil {
			return nil, err
		}
		for _, repo := range batch {
			if !repo.Fork {
				all = append(all, repo)
			}
		}
		if len(batch) < reposPerPage {
			break
		}
	}

	summaries := make([]types.RepositorySummary, len(all))
	for i, repo := range all {
		summaries[i] = types.RepositorySummary{
			Name:            repo.Name,
			FullName:        repo.FullName,
			URL:             repo.HTMLURL,
			Description:     repo.Description,
			PrimaryLanguage: repo.Language,
			Topics:          repo.Topics,
			Stars:           repo.Stars,
		}
	}

	// Language breakdowns are separate API calls; fetch them concurrently
	// with a bounded number of workers.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(languageFetchers)
	for i := range summaries {
		g.Go(func() error {
			url := fmt.Sprintf("%s/repos/%s/languages", c.baseURL, summaries[i].FullName)
			languages := make(map[string]int)
			if err := c.getJSON(gctx, url, &languages); err != nil {
				return err
			}
			summaries[i].Languages = languages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// getJSON performs an authenticated GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return &Error{URL: url, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: url, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return &Error{URL: url, StatusCode: resp.StatusCode, Message: "not found"}
	}
	if resp.StatusCode == http.StatusForbidden {
		return &Error{URL: url, StatusCode: resp.StatusCode, Message: "rate limited or forbidden"}
	}
	if resp.StatusCode != http.StatusOK {
		return &Error{URL: url, StatusCode: resp.StatusCode, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{URL: url, Message: "failed to read response", Cause: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{URL: url, Message: "failed to decode response", Cause: err}
	}

	return nil
}
