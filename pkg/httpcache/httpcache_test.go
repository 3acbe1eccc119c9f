package httpcache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestURLToKey(t *testing.T) {
	a := URLToKey("https://example.com/a")
	b := URLToKey("https://example.com/b")

	if a == b {
		t.Error("distinct URLs produced the same key")
	}
	if a != URLToKey("https://example.com/a") {
		t.Error("key is not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	err := &HTTPError{URL: "https://example.com", StatusCode: 503}
	want := "HTTP 503 fetching https://example.com"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate_limited", &HTTPError{StatusCode: 429}, true},
		{"server_error", &HTTPError{StatusCode: 500}, true},
		{"bad_gateway", &HTTPError{StatusCode: 502}, true},
		{"unavailable", &HTTPError{StatusCode: 503}, true},
		{"not_found", &HTTPError{StatusCode: 404}, false},
		{"forbidden", &HTTPError{StatusCode: 403}, false},
		{"network", errors.New("connection refused"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFetchURLWithoutCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("hello")) //nolint:errcheck // test handler
	}))
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}

	data, err := FetchURL(context.Background(), nil, srv.Client(), req, nil)
	if err != nil {
		t.Fatalf("FetchURL() error: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("body = %q, want %q", data, "hello")
	}
}

func TestFetchURLCachesResponses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte("cached")) //nolint:errcheck // test handler
	}))
	defer srv.Close()

	cache, err := NewWithPath(time.Hour, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for range 2 {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
		if err != nil {
			t.Fatal(err)
		}
		data, err := FetchURL(context.Background(), cache, srv.Client(), req, nil)
		if err != nil {
			t.Fatalf("FetchURL() error: %v", err)
		}
		if string(data) != "cached" {
			t.Errorf("body = %q, want %q", data, "cached")
		}
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}
}

func TestFetchURLNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}

	_, err = FetchURL(context.Background(), nil, srv.Client(), req, nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.StatusCode)
	}
}

func TestNullCacheFetch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte("fresh")) //nolint:errcheck // test handler
	}))
	defer srv.Close()

	cache := NewNull()
	if cache.TTL() != 0 {
		t.Errorf("TTL() = %v, want 0", cache.TTL())
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatal(err)
	}
	data, err := FetchURL(context.Background(), cache, srv.Client(), req, nil)
	if err != nil {
		t.Fatalf("FetchURL() error: %v", err)
	}
	if string(data) != "fresh" {
		t.Errorf("body = %q, want %q", data, "fresh")
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}
}

func TestLimiterForReusesPerHost(t *testing.T) {
	a := limiterFor("host-a.example")
	if limiterFor("host-a.example") != a {
		t.Error("same host returned a different limiter")
	}
	if limiterFor("host-b.example") == a {
		t.Error("different hosts share a limiter")
	}
}
