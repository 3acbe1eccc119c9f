package linkedin

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleSearcher implements Searcher using the Google Custom Search JSON
// API. Requires an API key and a programmable search engine (cx) scoped to
// the open web.
type GoogleSearcher struct {
	svc    *customsearch.Service
	logger *slog.Logger
	cx     string
}

// GoogleOption configures a GoogleSearcher.
type GoogleOption func(*GoogleSearcher)

// WithGoogleLogger sets a logger for the searcher.
func WithGoogleLogger(logger *slog.Logger) GoogleOption {
	return func(g *GoogleSearcher) { g.logger = logger }
}

// NewGoogleSearcher creates a Google Custom Search client.
func NewGoogleSearcher(ctx context.Context, apiKey, cx string, opts ...GoogleOption) (*GoogleSearcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create customsearch service: %w", err)
	}

	g := &GoogleSearcher{svc: svc, cx: cx, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// LoadGoogleKeys loads the Custom Search credentials from GOOGLE_API_KEY
// and GOOGLE_CX. Both must be set; otherwise returns empty strings.
func LoadGoogleKeys() (apiKey, cx string) {
	apiKey = os.Getenv("GOOGLE_API_KEY")
	cx = os.Getenv("GOOGLE_CX")
	if apiKey == "" || cx == "" {
		return "", ""
	}
	return apiKey, cx
}

// Search performs a web search using the Custom Search API. The API caps a
// single call at 10 results.
func (g *GoogleSearcher) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	num := maxResults
	if num <= 0 || num > providerResultCap {
		num = providerResultCap
	}

	g.logger.DebugContext(ctx, "google search", "query", query, "num", num)

	resp, err := g.svc.Cse.List().Q(query).Cx(g.cx).Num(int64(num)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("customsearch list: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, it := range resp.Items {
		results = append(results, SearchResult{
			Title:        it.Title,
			URL:          it.Link,
			DisplayedURL: it.DisplayLink,
			Snippet:      it.Snippet,
		})
	}
	return results, nil
}
