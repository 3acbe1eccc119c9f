// Package httpcache provides cached HTTP fetching with thundering herd prevention.
// Search provider clients route their calls through it so repeated lookups for
// the same person do not burn API quota.
package httpcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/codeGROOVE-dev/sfcache"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/localfs"
	"github.com/codeGROOVE-dev/sfcache/pkg/store/null"
	"golang.org/x/time/rate"
)

// Cacher allows external cache implementations for sharing across packages.
type Cacher interface {
	GetSet(ctx context.Context, key string, fetch func(context.Context) ([]byte, error), ttl ...time.Duration) ([]byte, error)
	TTL() time.Duration
}

// Cache wraps sfcache for HTTP response caching.
type Cache struct {
	*sfcache.TieredCache[string, []byte]

	ttl time.Duration
}

// New creates a new Cache with disk persistence at ~/.cache/linkscout.
func New(ttl time.Duration) (*Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return NewWithPath(ttl, filepath.Join(cacheDir, "linkscout"))
}

// NewNull creates a Cache with no persistence (all gets miss, all sets discard).
func NewNull() *Cache {
	tc, err := sfcache.NewTiered[string, []byte](null.New[string, []byte]())
	if err != nil {
		panic("sfcache.NewTiered with null store: " + err.Error())
	}
	return &Cache{TieredCache: tc, ttl: 0}
}

// NewWithPath creates a new Cache with disk persistence at the specified path.
func NewWithPath(ttl time.Duration, cachePath string) (*Cache, error) {
	if err := os.MkdirAll(cachePath, 0o750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	persist, err := localfs.New[string, []byte]("linkscout", cachePath)
	if err != nil {
		return nil, fmt.Errorf("create persistence layer: %w", err)
	}

	tc, err := sfcache.NewTiered[string, []byte](persist, sfcache.TTL(ttl))
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Cache{TieredCache: tc, ttl: ttl}, nil
}

// TTL returns the default TTL for cache entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// URLToKey converts a URL to a cache key using SHA256 hash.
func URLToKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return hex.EncodeToString(hash[:])
}

// HTTPError represents an HTTP error response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// FetchURL fetches a URL with caching and thundering herd prevention.
// If cache is non-nil, uses GetSet to ensure only one request is made for
// concurrent calls. Errors are never cached: a failed search must stay
// retryable on the next call.
func FetchURL(ctx context.Context, cache Cacher, client *http.Client, req *http.Request, logger *slog.Logger) ([]byte, error) {
	if cache == nil {
		return doFetch(ctx, client, req, logger)
	}

	var wasFetched bool
	data, err := cache.GetSet(ctx, URLToKey(req.URL.String()), func(ctx context.Context) ([]byte, error) {
		wasFetched = true
		if logger != nil {
			logger.InfoContext(ctx, "cache miss", "url", req.URL.String())
		}
		return doFetch(ctx, client, req, logger)
	}, cache.TTL())
	if err != nil {
		return nil, err
	}

	if !wasFetched && logger != nil {
		logger.DebugContext(ctx, "cache hit", "url", req.URL.String())
	}
	return data, nil
}

func doFetch(ctx context.Context, client *http.Client, req *http.Request, logger *slog.Logger) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			if err := limiterFor(req.URL.Host).Wait(ctx); err != nil {
				return nil, err
			}

			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close() //nolint:errcheck // intentional

			if resp.StatusCode != http.StatusOK {
				return nil, &HTTPError{StatusCode: resp.StatusCode, URL: req.URL.String()}
			}

			return io.ReadAll(resp.Body)
		},
		retry.Context(ctx),
		retry.Attempts(2),                     // single retry
		retry.Delay(200*time.Millisecond),     // delay before retry
		retry.MaxJitter(100*time.Millisecond), // small jitter
		retry.RetryIf(isRetryableError),       // only retry transient errors
		retry.OnRetry(func(n uint, err error) {
			if logger != nil {
				logger.Debug("retrying HTTP request", "attempt", n+1, "url", req.URL.String(), "error", err)
			}
		}),
	)
}

// isRetryableError returns true for transient errors that should be retried.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false // 4xx errors (except 429) are permanent
		}
	}
	// Network errors, timeouts, etc. are retryable
	return true
}

// Per-host rate limiting. Brave's free tier allows one query per second and
// SerpAPI throttles aggressive clients, so every host defaults to 1 rps.
var hostLimiters = struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
}{m: make(map[string]*rate.Limiter)}

func limiterFor(host string) *rate.Limiter {
	hostLimiters.mu.Lock()
	defer hostLimiters.mu.Unlock()

	l, ok := hostLimiters.m[host]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Second), 1)
		hostLimiters.m[host] = l
	}
	return l
}
