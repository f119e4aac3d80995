//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/cpfetch"
	"github.com/fwojciec/cpfetch/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements cpfetch.PageFetcher.
var _ cpfetch.PageFetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {}
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Problem</title></head>
<body>
<div id="root">Loading...</div>
<script>
setTimeout(function () {
  document.getElementById('root').innerHTML =
    '<div class="problem-statement"><div class="title">A. Rendered</div></div>';
}, 300);
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "A. Rendered")
	assert.NotContains(t, html, "Loading...")
}

func TestFetcher_Fetch_ReadyTimeoutIsNotFatal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>static page</p></body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(rod.WithReadyTimeout(200 * time.Millisecond))

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "static page")
}

func TestFetcher_Fetch_TimeoutTriggersOnSlowPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(rod.WithNavigationTimeout(200 * time.Millisecond))

	_, err := fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, cpfetch.ETIMEOUT, cpfetch.ErrorCode(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Fetch_BlocksImages(t *testing.T) {
	t.Parallel()

	var imageHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/pic.png", func(w http.ResponseWriter, r *http.Request) {
		imageHits.Add(1)
		w.Header().Set("Content-Type", "image/png")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="problem-statement">Input</div><img src="/pic.png"></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	fetcher := rod.NewFetcher()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, "problem-statement")
	assert.Zero(t, imageHits.Load())
}

func TestFetcher_Fetch_SendsUserAgent(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>Output</body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(rod.WithUserAgent("cpfetch-test/1.0"))

	_, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "cpfetch-test/1.0", got.Load())
}

func TestFetcher_Fetch_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="problem-statement">` + r.URL.Path + `</div></body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher()
	paths := []string{"/one", "/two"}
	results := make([]string, len(paths))
	errs := make([]error, len(paths))

	done := make(chan struct{})
	for i, p := range paths {
		go func() {
			defer func() { done <- struct{}{} }()
			results[i], errs[i] = fetcher.Fetch(context.Background(), srv.URL+p)
		}()
	}
	for range paths {
		<-done
	}

	for i, p := range paths {
		require.NoError(t, errs[i])
		assert.Contains(t, results[i], p)
	}
}
