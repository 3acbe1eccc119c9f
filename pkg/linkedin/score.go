package linkedin

import "strings"

// Weights holds the candidate scoring constants. They are heuristic
// tunables, not calibrated probabilities: the defaults ranked well in
// manual testing but callers may adjust them via WithWeights.
type Weights struct {
	// Baseline is the score every candidate starts with. The name gate
	// has already passed by scoring time, so the floor is high.
	Baseline float64
	// FieldMatch is added once per optional identity field (company,
	// role, location) found in the result's title or snippet.
	FieldMatch float64
	// EmailMatch is added when the person's email appears in the result.
	EmailMatch float64
	// ProfilePath is added when the link contains the /in/ marker.
	ProfilePath float64
}

// DefaultWeights returns the standard scoring constants.
func DefaultWeights() Weights {
	return Weights{
		Baseline:    0.6,
		FieldMatch:  0.15,
		EmailMatch:  0.35,
		ProfilePath: 0.1,
	}
}

// scoreCandidate assigns a confidence score in [0,1] to a result that has
// already passed the name gate. Used for ranking only.
func scoreCandidate(p Person, r SearchResult, w Weights) float64 {
	score := w.Baseline

	text := strings.ToLower(r.Title + " " + r.Snippet)

	for _, field := range []string{p.CompanyOrUniversity, p.TitleOrRole, p.Location} {
		if field != "" && strings.Contains(text, strings.ToLower(field)) {
			score += w.FieldMatch
		}
	}

	if p.Email != "" && strings.Contains(text, strings.ToLower(p.Email)) {
		score += w.EmailMatch
	}

	if strings.Contains(r.URL, "/in/") {
		score += w.ProfilePath
	}

	return min(score, 1.0)
}
