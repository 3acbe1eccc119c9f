package linkedin

import "context"

// providerResultCap is the per-call result ceiling search APIs enforce.
const providerResultCap = 10

// SearchResult is one raw web-search hit as returned by a provider.
type SearchResult struct {
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	DisplayedURL string   `json:"displayed_url,omitempty"`
	Snippet      string   `json:"snippet,omitempty"`
	Extensions   []string `json:"extensions,omitempty"` // rich-snippet fragments: role, company, location
}

// Searcher performs a web search. Implementations must return an empty
// slice, not an error, when the query matches nothing.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// ProfileFetcher retrieves structured data for a known profile URL.
// Reserved for providers with direct profile access; no current flow uses it.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, profileURL string) (map[string]string, error)
}
