// Package rod implements cpfetch.PageFetcher with headless Chrome through
// go-rod.
package rod

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/cpfetch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Defaults for Fetcher.
const (
	DefaultNavigationTimeout = 20 * time.Second
	DefaultReadyTimeout      = 10 * time.Second
)

// DefaultUserAgent is sent with every page request.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// readyScript reports whether the statement has rendered. Pages rendered
// on the client may not have it at DOMContentLoaded.
const readyScript = `() => !!document.querySelector('.problem-statement, .problemindexholder') ||
	/Input|Output/.test(document.body ? document.body.innerText : '')`

// blockedResources are subresource types irrelevant to the page text.
var blockedResources = map[proto.NetworkResourceType]bool{
	proto.NetworkResourceTypeImage:     true,
	proto.NetworkResourceTypeFont:      true,
	proto.NetworkResourceTypeMedia:     true,
	proto.NetworkResourceTypeWebSocket: true,
}

// Ensure Fetcher implements cpfetch.PageFetcher at compile time.
var _ cpfetch.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
//
// Every Fetch launches its own browser and shuts it down before returning,
// so no state is shared between calls and Fetcher is safe for concurrent
// use. The cost is a browser start per call.
type Fetcher struct {
	navigationTimeout time.Duration
	readyTimeout      time.Duration
	userAgent         string
	bin               string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNavigationTimeout bounds navigation and page load.
// Defaults to DefaultNavigationTimeout (20s) if not specified.
func WithNavigationTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.navigationTimeout = d
	}
}

// WithReadyTimeout bounds the wait for the statement to render.
// Defaults to DefaultReadyTimeout (10s) if not specified.
func WithReadyTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.readyTimeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBrowserBin sets the path of the Chrome/Chromium executable.
// By default rod finds an installed browser or downloads one.
func WithBrowserBin(path string) Option {
	return func(f *Fetcher) {
		f.bin = path
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		navigationTimeout: DefaultNavigationTimeout,
		readyTimeout:      DefaultReadyTimeout,
		userAgent:         DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL and returns the rendered HTML.
//
// Returns ETIMEOUT if navigation does not finish within the navigation
// timeout. The readiness wait that follows is best-effort: when it times
// out, whatever has rendered is returned.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "fetch %s: %v", url, err)
	}

	s, err := launchSession(f.bin)
	if err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "starting browser: %v", err)
	}
	defer s.close()

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "opening page: %v", err)
	}
	defer page.Close()

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "setting user agent: %v", err)
	}

	router := page.HijackRequests()
	if err := router.Add("*", "", blockSubresources); err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "installing request filter: %v", err)
	}
	go router.Run()
	defer router.Stop()

	if err := f.navigate(ctx, page, url); err != nil {
		return "", err
	}

	f.waitReady(ctx, page)

	html, err := page.Context(ctx).HTML()
	if err != nil {
		return "", cpfetch.Wrapf(err, cpfetch.EEXTRACT, "serializing page: %v", err)
	}

	return html, nil
}

// navigate loads url within the navigation timeout.
func (f *Fetcher) navigate(ctx context.Context, page *rod.Page, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, f.navigationTimeout)
	defer cancel()

	p := page.Context(navCtx)
	err := p.Navigate(url)
	if err == nil {
		err = p.WaitLoad()
	}
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return cpfetch.Wrapf(err, cpfetch.ETIMEOUT, "page load timed out after %s: %s", f.navigationTimeout, url)
	}
	return cpfetch.Wrapf(err, cpfetch.EEXTRACT, "navigating to %s: %v", url, err)
}

// waitReady polls until the statement is present or the ready timeout
// expires. Many pages are fully static, so expiry is not an error.
func (f *Fetcher) waitReady(ctx context.Context, page *rod.Page) {
	readyCtx, cancel := context.WithTimeout(ctx, f.readyTimeout)
	defer cancel()

	_ = page.Context(readyCtx).Wait(rod.Eval(readyScript))
}

// blockSubresources fails requests for resource types that do not
// contribute text and lets everything else through.
func blockSubresources(h *rod.Hijack) {
	if blockedResources[h.Request.Type()] {
		h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
		return
	}
	h.ContinueRequest(&proto.FetchContinueRequest{})
}
