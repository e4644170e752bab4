package gutendex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Author is an author entry as returned by the API. Birth and death
// years are nullable in the source data.
type Author struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// BookResult is a single book record from the API results list.
// Nullable fields stay pointers so missing values can be told apart
// from zero values during normalization.
type BookResult struct {
	Title         *string  `json:"title"`
	Authors       []Author `json:"authors"`
	DownloadCount *int     `json:"download_count"`
	Languages     []string `json:"languages"`
}

// Books fetches the first page of the catalog with no search term.
func (c *Client) Books(ctx context.Context) ([]BookResult, error) {
	return c.fetch(ctx, c.baseURL)
}

// Search fetches the first page of results for the given search term.
// Spaces in the term become %20, as the API expects.
func (c *Client) Search(ctx context.Context, term string) ([]BookResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return c.Books(ctx)
	}
	endpoint := fmt.Sprintf("%s?search=%s", c.baseURL, strings.ReplaceAll(term, " ", "%20"))
	return c.fetch(ctx, endpoint)
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]BookResult, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gutendex request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gutendex: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response struct {
		Results []BookResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode gutendex response: %w", err)
	}

	return response.Results, nil
}
