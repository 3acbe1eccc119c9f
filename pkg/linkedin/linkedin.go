// Package linkedin locates and verifies public LinkedIn profiles using
// third-party web-search results. It never fetches linkedin.com pages:
// everything is inferred from search result titles, links, and snippets.
package linkedin

import (
	"errors"
	"strings"
)

const (
	domain        = "linkedin.com"
	canonicalHost = "www.linkedin.com"
	brand         = "LinkedIn"
)

// ErrNameRequired is returned by Discover when the person has no usable name.
var ErrNameRequired = errors.New("full name is required")

// excludedPaths are LinkedIn path segments that never point at a personal
// profile. Queries filter them out with -inurl: terms.
var excludedPaths = [...]string{
	"/company/", "/posts/", "/jobs/", "/pulse/",
	"/learning/", "/groups/", "/directory/", "/school/",
}

// Person identifies who to search for. FullName is required; the other
// fields sharpen queries and scoring when present. Values are read-only
// once constructed.
type Person struct {
	FullName            string
	Email               string
	Location            string
	TitleOrRole         string
	CompanyOrUniversity string
}

// Match returns true if the URL looks like a LinkedIn personal profile link.
func Match(urlStr string) bool {
	lower := strings.ToLower(urlStr)
	return strings.Contains(lower, domain+"/in/") || strings.Contains(lower, domain+"/pub/")
}
