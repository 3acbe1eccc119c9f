package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/linkscout/pkg/httpcache"
)

// SearchCacheTTL is how long search responses stay cached. Profile listings
// in search indexes move slowly, and every miss costs API quota.
const SearchCacheTTL = 7 * 24 * time.Hour

// BraveSearcher implements Searcher using the Brave Search API.
// Free tier: 2,000 queries/month, 1 query/second.
// Get an API key at https://api.search.brave.com/
type BraveSearcher struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	apiKey     string
}

// braveResponse represents the Brave Search API response.
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// BraveOption configures a BraveSearcher.
type BraveOption func(*BraveSearcher)

// WithBraveCache sets a cache for storing search responses.
func WithBraveCache(cache httpcache.Cacher) BraveOption {
	return func(b *BraveSearcher) { b.cache = cache }
}

// WithBraveLogger sets a logger for the searcher.
func WithBraveLogger(logger *slog.Logger) BraveOption {
	return func(b *BraveSearcher) { b.logger = logger }
}

// NewBraveSearcher creates a new Brave Search API client.
// apiKey is your Brave Search API subscription token.
func NewBraveSearcher(apiKey string, opts ...BraveOption) *BraveSearcher {
	b := &BraveSearcher{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadBraveAPIKey loads the Brave API key from multiple sources (in priority order):
// 1. BRAVE_API_KEY environment variable
// 2. ~/.brave file (first line, trimmed)
//
// Returns empty string if no key is found.
func LoadBraveAPIKey() string {
	if key := os.Getenv("BRAVE_API_KEY"); key != "" {
		return key
	}

	if home, err := os.UserHomeDir(); err == nil {
		braveFile := filepath.Join(home, ".brave")
		if data, err := os.ReadFile(braveFile); err == nil {
			if key := strings.TrimSpace(string(data)); key != "" {
				return key
			}
		}
	}

	return ""
}

// Search performs a web search using the Brave Search API.
func (b *BraveSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	endpoint := "https://api.search.brave.com/res/v1/web/search"

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	count := maxResults
	if count <= 0 || count > providerResultCap {
		count = providerResultCap
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("count", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	b.logger.DebugContext(ctx, "brave search", "query", query, "count", count)

	data, err := httpcache.FetchURL(ctx, b.cache, b.httpClient, req, b.logger)
	if err != nil {
		return nil, err
	}
	return parseBraveResults(data)
}

// parseBraveResults converts the raw JSON response to SearchResult slice.
func parseBraveResults(data []byte) ([]SearchResult, error) {
	var br braveResponse
	if err := json.Unmarshal(data, &br); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]SearchResult, 0, len(br.Web.Results))
	for _, r := range br.Web.Results {
		results = append(results, SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Description,
		})
	}

	return results, nil
}
