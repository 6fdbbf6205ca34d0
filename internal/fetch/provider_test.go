package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html>
<head>
  <title>Acme Careers</title>
  <meta property="og:site_name" content="Acme Corp">
</head>
<body>
  <h1 class="job-title">Senior Backend Engineer</h1>
  <div class="description">
    Build APIs with Python.
    Work with PostgreSQL.
  </div>
  <meta property="og:empty" content="">
</body>
</html>`

func newTestProvider(t *testing.T) (*HTTPProvider, string, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(testPage))
	}))
	t.Cleanup(server.Close)
	return NewHTTPProvider(nil), server.URL, &requests
}

func TestHTTPProvider_InnerText(t *testing.T) {
	provider, url, _ := newTestProvider(t)

	text, ok := provider.InnerText(context.Background(), url, "h1.job-title")
	require.True(t, ok)
	assert.Equal(t, "Senior Backend Engineer", text)

	text, ok = provider.InnerText(context.Background(), url, ".description")
	require.True(t, ok)
	assert.Equal(t, "Build APIs with Python.\nWork with PostgreSQL.", text)
}

func TestHTTPProvider_MetaContentAttribute(t *testing.T) {
	provider, url, _ := newTestProvider(t)

	text, ok := provider.InnerText(context.Background(), url, "meta[property='og:site_name']")
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", text)

	// A meta element with an empty content attribute is not a usable result.
	_, ok = provider.InnerText(context.Background(), url, "meta[property='og:empty']")
	assert.False(t, ok)
}

func TestHTTPProvider_SelectorNotFound(t *testing.T) {
	provider, url, _ := newTestProvider(t)

	_, ok := provider.InnerText(context.Background(), url, ".does-not-exist")
	assert.False(t, ok)
}

func TestHTTPProvider_FetchFailureReportsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewHTTPProvider(nil)
	_, ok := provider.InnerText(context.Background(), server.URL, "h1")
	assert.False(t, ok)
}

func TestHTTPProvider_CachesDocumentPerURL(t *testing.T) {
	provider, url, requests := newTestProvider(t)

	ctx := context.Background()
	provider.InnerText(ctx, url, "h1.job-title")
	provider.InnerText(ctx, url, ".description")
	provider.InnerText(ctx, url, ".missing")

	assert.Equal(t, int64(1), requests.Load(), "selector chain should issue one fetch")
}

func TestHTTPProvider_CachesFetchFailurePerURL(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewHTTPProvider(nil)
	ctx := context.Background()

	for _, selector := range []string{"h1", ".description", "article"} {
		_, ok := provider.InnerText(ctx, server.URL, selector)
		assert.False(t, ok)
	}
	_, _, err := provider.Page(ctx, server.URL)
	require.Error(t, err)

	assert.Equal(t, int64(1), requests.Load(), "a failed fetch should not be retried per selector")
}

func TestHTTPProvider_Page(t *testing.T) {
	provider, url, _ := newTestProvider(t)

	title, body, err := provider.Page(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "Acme Careers", title)
	assert.Contains(t, body, "Senior Backend Engineer")
	assert.Contains(t, body, "Build APIs with Python.")
}
