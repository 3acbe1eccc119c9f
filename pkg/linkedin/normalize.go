package linkedin

import (
	"net/url"
	"regexp"
	"strings"
)

// profilePathRe accepts exactly one path segment under /in/ or /pub/ with an
// optional trailing slash. Anything deeper (activity feeds, directory pages)
// is rejected.
var profilePathRe = regexp.MustCompile(`(?i)^/(in|pub)/[^/]+/?$`)

// NormalizeProfileURL canonicalizes a LinkedIn personal profile URL to
// https://www.linkedin.com/<in|pub>/<slug>/ with the query and fragment
// dropped. It returns "" for anything that is not a personal profile link.
// The result is stable: normalizing an already-canonical URL is a no-op.
func NormalizeProfileURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if !strings.Contains(strings.ToLower(u.Host), domain) {
		return ""
	}
	if !profilePathRe.MatchString(u.Path) {
		return ""
	}

	path := strings.TrimRight(u.Path, "/") + "/"
	return "https://" + canonicalHost + path
}
