package linkedin

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// quotedOptionalTerms returns the person's optional fields as individually
// quoted search terms. Blank fields are omitted, never quoted as "".
func quotedOptionalTerms(p Person) []string {
	var terms []string
	for _, t := range []string{p.CompanyOrUniversity, p.TitleOrRole, p.Location} {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, `"`+t+`"`)
		}
	}
	return terms
}

// queryPassA is the primary search: profile paths only, quoted name,
// quoted optional terms, non-profile paths excluded.
func queryPassA(p Person) string {
	parts := []string{
		"site:" + domain + "/in",
		`"` + strings.TrimSpace(p.FullName) + `"`,
	}
	parts = append(parts, quotedOptionalTerms(p)...)
	for _, path := range excludedPaths {
		parts = append(parts, "-inurl:"+path)
	}
	return collapseSpaces(strings.Join(parts, " "))
}

// queryPassB is pass A with the email appended. Empty when no email exists,
// which tells the orchestrator to skip the pass.
func queryPassB(p Person) string {
	if strings.TrimSpace(p.Email) == "" {
		return ""
	}
	return collapseSpaces(queryPassA(p) + " " + strings.TrimSpace(p.Email))
}

// queryPassC broadens to the whole site but still requires the profile path
// marker as a literal term.
func queryPassC(p Person) string {
	parts := []string{
		"site:" + domain,
		`"` + domain + `/in/"`,
		`"` + strings.TrimSpace(p.FullName) + `"`,
	}
	parts = append(parts, quotedOptionalTerms(p)...)
	for _, path := range excludedPaths {
		parts = append(parts, "-inurl:"+path)
	}
	return collapseSpaces(strings.Join(parts, " "))
}

// queries returns the escalating search passes in order. Pass B may be
// empty; callers skip empty entries.
func queries(p Person) []string {
	return []string{queryPassA(p), queryPassB(p), queryPassC(p)}
}
