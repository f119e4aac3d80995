package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/cpfetch"
)

// Ensure PageFetcher implements cpfetch.PageFetcher at compile time.
var _ cpfetch.PageFetcher = (*PageFetcher)(nil)

// PageFetcher retrieves problem pages with plain HTTP requests.
// Unlike rod.Fetcher it does not execute JavaScript; it serves pages whose
// statement is delivered server-side, without the cost of a browser.
type PageFetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// PageOption configures a PageFetcher.
type PageOption func(*PageFetcher)

// WithPageTimeout sets the timeout for page requests.
// Defaults to 20s, matching rod.Fetcher's navigation timeout.
func WithPageTimeout(d time.Duration) PageOption {
	return func(f *PageFetcher) {
		f.timeout = d
	}
}

// WithPageUserAgent sets the User-Agent header sent with page requests.
func WithPageUserAgent(ua string) PageOption {
	return func(f *PageFetcher) {
		f.userAgent = ua
	}
}

// NewPageFetcher creates a new HTTP-based PageFetcher.
func NewPageFetcher(opts ...PageOption) *PageFetcher {
	f := &PageFetcher{
		userAgent: DefaultUserAgent,
		timeout:   20 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Returns ETIMEOUT if the request exceeds the timeout.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "building request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", cpfetch.Errorf(cpfetch.EEXTRACT, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", classify(err, url)
	}

	return string(body), nil
}

// classify maps transport errors to application error codes.
func classify(err error, url string) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return cpfetch.Wrapf(err, cpfetch.ETIMEOUT, "page load timed out: %s", url)
	}
	return cpfetch.Wrapf(err, cpfetch.EEXTRACT, "fetching %s: %v", url, err)
}
