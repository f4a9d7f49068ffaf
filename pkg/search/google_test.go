package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSearch(t *testing.T) {
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{"title": "Tesla Stock Jumps", "link": "https://example.com/tesla-1"},
			{"title": "Tesla Recall Update", "link": "https://example.com/tesla-2"},
		},
	}

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &GoogleClient{
		apiKey:     "test-key",
		cseID:      "test-cse",
		limit:      5,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	items, err := client.Search("TSLA 주식 뉴스")

	assert.Equal(t, nil, err)
	assert.Equal(t, "TSLA 주식 뉴스", gotQuery)
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "Tesla Stock Jumps", items[0].Title)
	assert.Equal(t, "https://example.com/tesla-1", items[0].Link)
	assert.Equal(t, "Tesla Recall Update", items[1].Title)
}

func TestSearch_LimitApplied(t *testing.T) {
	var results []map[string]interface{}
	for i := 0; i < 10; i++ {
		results = append(results, map[string]interface{}{"title": "t", "link": "l"})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"items": results})
	}))
	defer srv.Close()

	client := &GoogleClient{
		apiKey:     "test-key",
		cseID:      "test-cse",
		limit:      3,
		httpClient: &http.Client{Transport: &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}},
	}

	items, err := client.Search("query")

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(items))
}

func TestSearch_NoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer srv.Close()

	client := &GoogleClient{
		apiKey:     "test-key",
		cseID:      "test-cse",
		limit:      5,
		httpClient: &http.Client{Transport: &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}},
	}

	items, err := client.Search("query")

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(items))
}

func TestSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &GoogleClient{
		apiKey:     "bad-key",
		cseID:      "test-cse",
		limit:      5,
		httpClient: &http.Client{Transport: &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}},
	}

	_, err := client.Search("query")

	assert.NotEqual(t, nil, err)
}

func TestNewGoogleClient_LimitClamped(t *testing.T) {
	assert.Equal(t, defaultLimit, NewGoogleClient("k", "c", 0).limit)
	assert.Equal(t, defaultLimit, NewGoogleClient("k", "c", 50).limit)
	assert.Equal(t, 3, NewGoogleClient("k", "c", 3).limit)
}

// rewriteTransport redirects all requests to a fixed base URL (test server)
// while keeping the original query string.
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
