package linkedin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractFullName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jane Doe - Senior Engineer - Acme Corp | LinkedIn", "Jane Doe"},
		{"Jane Doe | LinkedIn", "Jane Doe"},
		{"Jane Doe| LinkedIn", "Jane Doe"},
		{"Jane Doe", "Jane Doe"},
		{"Reid Hoffman - Co-Founder, LinkedIn | LinkedIn", "Reid Hoffman"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := extractFullName(tt.title); got != tt.want {
				t.Errorf("extractFullName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestExtractFromExtensions(t *testing.T) {
	tests := []struct {
		name         string
		extensions   []string
		wantCompany  string
		wantLocation string
	}{
		{
			name:         "three_entries",
			extensions:   []string{"Head of Sales", "Widgets Inc", "Austin, TX"},
			wantCompany:  "Widgets Inc",
			wantLocation: "Austin, TX",
		},
		{
			name:        "two_entries_company",
			extensions:  []string{"Head of Sales", "Widgets Inc"},
			wantCompany: "Widgets Inc",
		},
		{
			name:         "two_entries_location_by_comma",
			extensions:   []string{"Widgets Inc", "Austin, TX"},
			wantLocation: "Austin, TX",
		},
		{
			name:         "two_entries_location_by_bullet",
			extensions:   []string{"Widgets Inc", "Austin • Texas"},
			wantLocation: "Austin • Texas",
		},
		{
			name: "empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company, location := extractFromExtensions(tt.extensions)
			if company != tt.wantCompany {
				t.Errorf("company = %q, want %q", company, tt.wantCompany)
			}
			if location != tt.wantLocation {
				t.Errorf("location = %q, want %q", location, tt.wantLocation)
			}
		})
	}
}

func TestExtractCompanyAndLocation(t *testing.T) {
	tests := []struct {
		name         string
		result       SearchResult
		wantCompany  string
		wantLocation string
	}{
		{
			name: "title_three_parts",
			result: SearchResult{
				Title: "Jane Doe - Senior Engineer - Acme Corp | LinkedIn",
			},
			wantCompany: "Acme Corp",
		},
		{
			name: "title_rejects_brand_company",
			result: SearchResult{
				Title: "Jane Doe - Member - LinkedIn Groups | LinkedIn",
			},
			wantCompany: "",
		},
		{
			name: "snippet_at_and_based_in",
			result: SearchResult{
				Snippet: "Head of Sales at Widgets Inc. Based in Austin, TX.",
			},
			wantCompany:  "Widgets Inc",
			wantLocation: "Austin, TX",
		},
		{
			name: "extensions_win_over_title",
			result: SearchResult{
				Title:      "Jane Doe - Senior Engineer - Acme Corp | LinkedIn",
				Extensions: []string{"Senior Engineer", "Widgets Inc", "Austin, TX"},
			},
			wantCompany:  "Widgets Inc",
			wantLocation: "Austin, TX",
		},
		{
			name: "no_signal",
			result: SearchResult{
				Title:   "Jane Doe | LinkedIn",
				Snippet: "500+ connections.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company, location := extractCompanyAndLocation(tt.result)
			if company != tt.wantCompany {
				t.Errorf("company = %q, want %q", company, tt.wantCompany)
			}
			if location != tt.wantLocation {
				t.Errorf("location = %q, want %q", location, tt.wantLocation)
			}
		})
	}
}

func TestExtractMetadata(t *testing.T) {
	got := extractMetadata(SearchResult{
		Title:   "Jane Doe - Senior Engineer - Acme Corp | LinkedIn",
		Snippet: "Senior Engineer at Acme Corp. Based in Austin, TX.",
	})

	want := Metadata{
		FullName: "Jane Doe",
		Headline: "Senior Engineer at Acme Corp. Based in Austin, TX.",
		Company:  "Acme Corp",
		Location: "Austin, TX",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extractMetadata() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMetadataHeadlineFallsBackToTitle(t *testing.T) {
	got := extractMetadata(SearchResult{
		Title: "Jane Doe - Acme Corp | LinkedIn",
	})

	if got.Headline != "Jane Doe - Acme Corp" {
		t.Errorf("headline = %q, want cleaned title", got.Headline)
	}
	if got.FullName != "Jane Doe" {
		t.Errorf("full name = %q, want %q", got.FullName, "Jane Doe")
	}
}

func TestPickBest(t *testing.T) {
	results := []SearchResult{
		{Title: "Post", URL: "https://www.linkedin.com/posts/janedoe_x"},
		{Title: "Company", URL: "https://www.linkedin.com/company/acme"},
		{Title: "Profile", URL: "https://www.linkedin.com/in/janedoe/"},
	}

	got := pickBest(results, "linkedin.com/in/")
	if got == nil {
		t.Fatal("pickBest returned nil")
	}
	if got.Title != "Profile" {
		t.Errorf("picked %q, want the third entry", got.Title)
	}
}

func TestPickBestDisplayedLink(t *testing.T) {
	results := []SearchResult{
		{Title: "Masked", URL: "https://r.example.com/x", DisplayedURL: "WWW.LINKEDIN.COM/IN/JANEDOE"},
	}

	if got := pickBest(results, "linkedin.com/in/"); got == nil {
		t.Error("displayed link should match the marker case-insensitively")
	}
}

func TestPickBestNoMatch(t *testing.T) {
	results := []SearchResult{
		{URL: "https://www.linkedin.com/company/acme"},
	}
	if got := pickBest(results, "linkedin.com/in/"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
