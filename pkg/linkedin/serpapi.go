package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/linkscout/pkg/httpcache"
)

// SerpSearcher implements Searcher using SerpAPI's Google engine. Unlike
// the plain providers it surfaces rich-snippet extensions (role, company,
// location fragments), which make metadata extraction noticeably better.
type SerpSearcher struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
	apiKey     string
}

// serpResponse represents the subset of a SerpAPI response we consume.
type serpResponse struct {
	OrganicResults []struct {
		Title         string `json:"title"`
		Link          string `json:"link"`
		DisplayedLink string `json:"displayed_link"`
		Snippet       string `json:"snippet"`
		RichSnippet   struct {
			Top struct {
				Extensions []string `json:"extensions"`
			} `json:"top"`
			Extensions []string `json:"extensions"`
		} `json:"rich_snippet"`
	} `json:"organic_results"`
}

// SerpOption configures a SerpSearcher.
type SerpOption func(*SerpSearcher)

// WithSerpCache sets a cache for storing search responses.
func WithSerpCache(cache httpcache.Cacher) SerpOption {
	return func(s *SerpSearcher) { s.cache = cache }
}

// WithSerpLogger sets a logger for the searcher.
func WithSerpLogger(logger *slog.Logger) SerpOption {
	return func(s *SerpSearcher) { s.logger = logger }
}

// NewSerpSearcher creates a new SerpAPI client.
func NewSerpSearcher(apiKey string, opts ...SerpOption) *SerpSearcher {
	s := &SerpSearcher{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadSerpAPIKey loads the SerpAPI key from the SERPAPI_API_KEY environment
// variable. Returns empty string if unset.
func LoadSerpAPIKey() string {
	return os.Getenv("SERPAPI_API_KEY")
}

// Search performs a Google search through SerpAPI.
func (s *SerpSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	endpoint := "https://serpapi.com/search"

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	num := maxResults
	if num <= 0 || num > providerResultCap {
		num = providerResultCap
	}

	q := u.Query()
	q.Set("engine", "google")
	q.Set("q", query)
	q.Set("num", strconv.Itoa(num))
	q.Set("api_key", s.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	s.logger.DebugContext(ctx, "serpapi search", "query", query, "num", num)

	data, err := httpcache.FetchURL(ctx, s.cache, s.httpClient, req, s.logger)
	if err != nil {
		return nil, err
	}
	return parseSerpResults(data)
}

// parseSerpResults converts the raw JSON response to SearchResult slice.
// Extensions come from rich_snippet.top when present, falling back to the
// top-level rich_snippet list.
func parseSerpResults(data []byte) ([]SearchResult, error) {
	var sr serpResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]SearchResult, 0, len(sr.OrganicResults))
	for _, r := range sr.OrganicResults {
		ext := r.RichSnippet.Top.Extensions
		if len(ext) == 0 {
			ext = r.RichSnippet.Extensions
		}
		results = append(results, SearchResult{
			Title:        r.Title,
			URL:          r.Link,
			DisplayedURL: r.DisplayedLink,
			Snippet:      r.Snippet,
			Extensions:   ext,
		})
	}

	return results, nil
}
