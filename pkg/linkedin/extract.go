package linkedin

import "strings"

// Metadata holds profile fields inferred from a single search result.
// Every field is best effort: extraction never fails, it just leaves
// fields empty.
type Metadata struct {
	FullName   string `json:"full_name,omitempty"`
	Headline   string `json:"headline,omitempty"`
	Company    string `json:"company,omitempty"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// pickBest returns the first result whose link or displayed link contains
// the marker substring, in provider order. Nil when nothing matches.
func pickBest(results []SearchResult, marker string) *SearchResult {
	m := strings.ToLower(marker)
	for i := range results {
		if strings.Contains(strings.ToLower(results[i].URL), m) ||
			strings.Contains(strings.ToLower(results[i].DisplayedURL), m) {
			return &results[i]
		}
	}
	return nil
}

// stripBranding removes the trailing "| LinkedIn" suffix search engines
// append to profile titles.
func stripBranding(title string) string {
	title = strings.ReplaceAll(title, " | "+brand, "")
	title = strings.ReplaceAll(title, "| "+brand, "")
	return strings.TrimSpace(title)
}

// extractFullName pulls a human name out of a result title. Titles commonly
// look like "Name - Job Title - Company | LinkedIn" or "Name | LinkedIn".
func extractFullName(title string) string {
	title = stripBranding(title)
	if name, _, ok := strings.Cut(title, " - "); ok {
		return strings.TrimSpace(name)
	}
	return title
}

// separators delimit company and location phrases inside snippets.
var separators = [...]string{".", "|", " - ", " • ", " · "}

// truncateAtSeparators cuts s at each separator in turn and trims the rest.
func truncateAtSeparators(s string) string {
	for _, sep := range separators {
		if before, _, ok := strings.Cut(s, sep); ok {
			s = before
		}
	}
	return strings.TrimSpace(s)
}

// extractFromExtensions parses rich-snippet extensions, which usually look
// like ["Job Title", "Company Name", "Location, Country"].
func extractFromExtensions(extensions []string) (company, location string) {
	switch {
	case len(extensions) >= 3:
		// Last is usually location, second to last the company.
		location = strings.TrimSpace(extensions[len(extensions)-1])
		company = strings.TrimSpace(extensions[len(extensions)-2])
	case len(extensions) == 2:
		// Either [Job Title, Company] or [Company, Location]. A comma or
		// bullet separator marks the second entry as a location.
		second := strings.TrimSpace(extensions[1])
		if strings.Contains(second, ",") || strings.Contains(second, " • ") || strings.Contains(second, " · ") {
			location = second
		} else {
			company = second
		}
	}
	return company, location
}

// extractCompanyAndLocation tries ordered heuristics until each field is
// filled: rich-snippet extensions, then title parts, then the snippet's
// "at <Company>" phrase, then "based in <Location>". Later strategies only
// fire for fields still unset.
func extractCompanyAndLocation(r SearchResult) (company, location string) {
	company, location = extractFromExtensions(r.Extensions)

	if company == "" && strings.Contains(r.Title, " - ") {
		cleaned := stripBranding(r.Title)
		var parts []string
		for _, p := range strings.Split(cleaned, " - ") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		// "Name - Role - Company": with three or more parts the last is a
		// company candidate, unless it is LinkedIn's own branding.
		if len(parts) >= 3 {
			last := parts[len(parts)-1]
			if !strings.HasPrefix(strings.ToLower(last), strings.ToLower(brand)) {
				company = last
			}
		}
	}

	if company == "" {
		if _, after, ok := strings.Cut(r.Snippet, " at "); ok {
			company = truncateAtSeparators(after)
		}
	}

	if location == "" {
		if idx := strings.Index(strings.ToLower(r.Snippet), "based in "); idx >= 0 {
			location = truncateAtSeparators(r.Snippet[idx+len("based in "):])
		}
	}

	return company, location
}

// extractMetadata derives profile metadata from one search result.
// The snippet serves as the headline, falling back to the cleaned title.
func extractMetadata(r SearchResult) Metadata {
	headline := r.Snippet
	if headline == "" {
		headline = stripBranding(r.Title)
	}

	company, location := extractCompanyAndLocation(r)

	return Metadata{
		FullName: extractFullName(r.Title),
		Headline: headline,
		Company:  company,
		Location: location,
	}
}
