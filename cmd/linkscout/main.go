// Command linkscout discovers LinkedIn profile URLs for a person.
//
// Usage:
//
//	linkscout -name "Jane Doe" -company "Acme Corp"
//	linkscout -name "Jane Doe" -email jane@acme.example -location "Austin, TX"
//
// A search provider API key is required: BRAVE_API_KEY, GOOGLE_API_KEY plus
// GOOGLE_CX, or SERPAPI_API_KEY. Keys may also live in a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codeGROOVE-dev/linkscout/pkg/httpcache"
	"github.com/codeGROOVE-dev/linkscout/pkg/linkedin"
	"github.com/joho/godotenv"
)

func main() {
	name := flag.String("name", "", "full name to search for (required)")
	email := flag.String("email", "", "email address")
	company := flag.String("company", "", "company or university")
	title := flag.String("title", "", "job title or role")
	location := flag.String("location", "", "location")
	provider := flag.String("provider", "", "search provider: brave, google, or serpapi (default: first with credentials)")
	maxResults := flag.Int("max", 10, "results to request per search pass")
	noCache := flag.Bool("no-cache", false, "disable search response caching")
	cacheTTL := flag.Duration("cache-ttl", linkedin.SearchCacheTTL, "cache time-to-live")
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: linkscout [options] -name \"Full Name\"")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nProviders (first with credentials wins):")
		fmt.Fprintln(os.Stderr, "  - Brave:   BRAVE_API_KEY or ~/.brave")
		fmt.Fprintln(os.Stderr, "  - Google:  GOOGLE_API_KEY and GOOGLE_CX")
		fmt.Fprintln(os.Stderr, "  - SerpAPI: SERPAPI_API_KEY")
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx := context.Background()

	var cache *httpcache.Cache
	if !*noCache {
		var err error
		cache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := cache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
		}
	}

	searcher, err := newSearcher(ctx, *provider, cache, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	finder := linkedin.NewFinder(searcher,
		linkedin.WithLogger(logger),
		linkedin.WithMaxResults(*maxResults),
	)

	urls, err := finder.Discover(ctx, linkedin.Person{
		FullName:            *name,
		Email:               *email,
		CompanyOrUniversity: *company,
		TitleOrRole:         *title,
		Location:            *location,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "No matching profiles found.")
		os.Exit(2)
	}
	for _, u := range urls {
		fmt.Println(u)
	}
}

// newSearcher picks a search provider by name, or by which credentials are
// present when name is empty.
func newSearcher(ctx context.Context, name string, cache *httpcache.Cache, logger *slog.Logger) (linkedin.Searcher, error) {
	var cacher httpcache.Cacher
	if cache != nil {
		cacher = cache
	}

	brave := func() (linkedin.Searcher, error) {
		key := linkedin.LoadBraveAPIKey()
		if key == "" {
			return nil, fmt.Errorf("brave: BRAVE_API_KEY not set and no ~/.brave file")
		}
		return linkedin.NewBraveSearcher(key,
			linkedin.WithBraveCache(cacher),
			linkedin.WithBraveLogger(logger)), nil
	}
	google := func() (linkedin.Searcher, error) {
		key, cx := linkedin.LoadGoogleKeys()
		if key == "" {
			return nil, fmt.Errorf("google: GOOGLE_API_KEY and GOOGLE_CX must both be set")
		}
		return linkedin.NewGoogleSearcher(ctx, key, cx, linkedin.WithGoogleLogger(logger))
	}
	serpapi := func() (linkedin.Searcher, error) {
		key := linkedin.LoadSerpAPIKey()
		if key == "" {
			return nil, fmt.Errorf("serpapi: SERPAPI_API_KEY not set")
		}
		return linkedin.NewSerpSearcher(key,
			linkedin.WithSerpCache(cacher),
			linkedin.WithSerpLogger(logger)), nil
	}

	switch name {
	case "brave":
		return brave()
	case "google":
		return google()
	case "serpapi":
		return serpapi()
	case "":
		for _, build := range []func() (linkedin.Searcher, error){brave, google, serpapi} {
			if s, err := build(); err == nil {
				return s, nil
			}
		}
		return nil, fmt.Errorf("no search provider credentials found (need BRAVE_API_KEY, GOOGLE_API_KEY+GOOGLE_CX, or SERPAPI_API_KEY)")
	default:
		return nil, fmt.Errorf("unknown provider %q (want brave, google, or serpapi)", name)
	}
}
