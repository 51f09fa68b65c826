package assistant

import (
	"context"
	"fmt"
	"time"
)

type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// WebSearcher stands in for a programmable-search backend. Results are
// canned and returned after a fixed delay to model provider latency.
type WebSearcher struct {
	delay time.Duration
}

func NewWebSearcher(delay time.Duration) *WebSearcher {
	return &WebSearcher{delay: delay}
}

func (s *WebSearcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}

	return []SearchResult{
		{
			Title:   "Example Search Result 1",
			Link:    "https://example.com/result1",
			Snippet: fmt.Sprintf("This is a snippet from the first search result that matches your query about %s", query),
		},
		{
			Title:   "Example Search Result 2",
			Link:    "https://example.com/result2",
			Snippet: fmt.Sprintf("Here's another relevant excerpt from a web page about %s", query),
		},
	}, nil
}
