package linkedin

import (
	"context"
	"fmt"
	"strings"
)

// Status classifies the outcome of a single-URL verification.
type Status string

// Verification outcomes.
const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	StatusError   Status = "ERROR"
)

// lookupResultCount is how many results a verification search requests;
// the corroborating snippet is almost always in the first few hits.
const lookupResultCount = 5

// LookupResult is the terminal outcome of verifying one profile URL.
type LookupResult struct {
	Status   Status    `json:"status"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// Lookup verifies a profile URL against search results and extracts profile
// metadata from the best corroborating hit. It never returns a Go error:
// every outcome, including provider failure, reduces to the three-way
// status with an optional message.
func (f *Finder) Lookup(ctx context.Context, profileURL string) LookupResult {
	if !Match(profileURL) {
		return LookupResult{
			Status: StatusInvalid,
			Error:  "not a LinkedIn profile URL",
		}
	}

	f.logger.InfoContext(ctx, "looking up profile", "url", profileURL)

	results, err := f.searcher.Search(ctx, profileURL, lookupResultCount)
	if err != nil {
		f.logger.WarnContext(ctx, "lookup search failed", "url", profileURL, "error", err)
		return LookupResult{
			Status: StatusError,
			Error:  fmt.Sprintf("search failed: %v", err),
		}
	}

	best := pickBest(results, domain+"/in/")
	if best == nil {
		best = pickBest(results, domain+"/pub/")
	}
	if best == nil {
		return LookupResult{
			Status: StatusInvalid,
			Error:  "no profile result found for this URL",
		}
	}

	md := extractMetadata(*best)
	md.ProfileURL = bestLink(*best, profileURL)
	return LookupResult{Status: StatusValid, Metadata: &md}
}

// bestLink prefers the result's own link, then its displayed link, then the
// URL the caller asked about.
func bestLink(r SearchResult, fallback string) string {
	switch {
	case r.URL != "":
		return r.URL
	case r.DisplayedURL != "":
		return strings.TrimSpace(r.DisplayedURL)
	default:
		return fallback
	}
}
