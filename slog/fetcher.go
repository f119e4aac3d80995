// Package slog provides logging decorators for cpfetch services.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cpfetch"
)

// Ensure LoggingFetcher implements cpfetch.PageFetcher.
var _ cpfetch.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with logging.
// The content hash makes it easy to tell whether two fetches rendered the
// same DOM.
type LoggingFetcher struct {
	next   cpfetch.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next cpfetch.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if html != "" {
			attrs = append(attrs, "hash", strconv.FormatUint(xxhash.Sum64String(html), 16))
		}
		if err != nil {
			attrs = append(attrs, "code", cpfetch.ErrorCode(err), "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
