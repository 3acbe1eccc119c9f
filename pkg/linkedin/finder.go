package linkedin

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Finder discovers LinkedIn profile URLs for a person via web search.
type Finder struct {
	searcher   Searcher
	logger     *slog.Logger
	weights    Weights
	maxResults int
}

// Option configures a Finder.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	weights    Weights
	maxResults int
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithWeights overrides the candidate scoring constants.
func WithWeights(w Weights) Option {
	return func(c *config) { c.weights = w }
}

// WithMaxResults sets how many results to request per search pass.
// Providers cap a single call at 10 regardless.
func WithMaxResults(n int) Option {
	return func(c *config) { c.maxResults = n }
}

// NewFinder creates a Finder backed by the given search provider.
func NewFinder(searcher Searcher, opts ...Option) *Finder {
	cfg := &config{
		logger:     slog.Default(),
		weights:    DefaultWeights(),
		maxResults: providerResultCap,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Finder{
		searcher:   searcher,
		logger:     cfg.logger,
		weights:    cfg.weights,
		maxResults: cfg.maxResults,
	}
}

// Discover returns canonical profile URLs matching the person, best first
// and deduplicated. Search passes run in escalating breadth; the first pass
// with any results wins. No results is a normal outcome: the returned slice
// is empty and err is nil. Provider failures propagate; the caller owns
// retry policy.
func (f *Finder) Discover(ctx context.Context, p Person) ([]string, error) {
	if strings.TrimSpace(p.FullName) == "" {
		return nil, ErrNameRequired
	}

	var results []SearchResult
	for _, q := range queries(p) {
		if q == "" {
			continue
		}
		f.logger.DebugContext(ctx, "search pass", "query", q)

		rs, err := f.searcher.Search(ctx, q, f.maxResults)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", q, err)
		}
		if len(rs) > 0 {
			f.logger.InfoContext(ctx, "search pass returned results", "query", q, "count", len(rs))
			results = rs
			break
		}
	}

	return f.rank(ctx, p, results), nil
}

type scoredCandidate struct {
	url   string
	score float64
}

// rank filters raw results through the name gate and URL normalizer, scores
// the survivors, and returns deduplicated canonical URLs best first. The
// sort is stable so equal scores keep provider order, and dedupe keeps the
// first (highest ranked) occurrence of each URL.
func (f *Finder) rank(ctx context.Context, p Person, results []SearchResult) []string {
	var candidates []scoredCandidate
	for _, r := range results {
		if !titleContainsName(r.Title, p.FullName) {
			f.logger.DebugContext(ctx, "name gate failed", "title", r.Title)
			continue
		}
		u := NormalizeProfileURL(r.URL)
		if u == "" {
			f.logger.DebugContext(ctx, "not a personal profile", "url", r.URL)
			continue
		}
		candidates = append(candidates, scoredCandidate{
			url:   u,
			score: scoreCandidate(p, r, f.weights),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	seen := make(map[string]bool, len(candidates))
	urls := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.url] {
			continue
		}
		seen[c.url] = true
		urls = append(urls, c.url)
	}
	return urls
}
