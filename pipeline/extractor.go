// Package pipeline composes metadata lookup, page rendering and content
// extraction into a single problem description.
package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/cpfetch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements cpfetch.ProblemExtractor at compile time.
var _ cpfetch.ProblemExtractor = (*Extractor)(nil)

// Extractor produces a ProblemData for a problem URL.
//
// Metadata is an enrichment: when the lookup fails the result is built from
// the page alone. A failure to render or read the page fails the call.
// Extractor holds no per-call state and is safe for concurrent use.
type Extractor struct {
	Metadata cpfetch.MetadataClient
	Fetcher  cpfetch.PageFetcher
	Content  cpfetch.ContentExtractor

	// Logger receives degraded-metadata warnings. Nil discards them.
	Logger *slog.Logger
}

// ExtractProblemData parses rawURL, then fetches metadata and the rendered
// page concurrently and merges them.
func (e *Extractor) ExtractProblemData(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error) {
	ref, err := cpfetch.ParseProblemURL(rawURL)
	if err != nil {
		return nil, err
	}

	logger := e.logger().With("extraction", uuid.NewString(), "problem", ref.String())

	var (
		summary *cpfetch.RemoteProblemSummary
		scraped *cpfetch.ProblemData
	)

	g, gctx := errgroup.WithContext(ctx)

	if e.Metadata != nil {
		g.Go(func() error {
			s, err := e.Metadata.FetchProblem(gctx, ref)
			if err != nil {
				logger.Warn("metadata unavailable, using page content only",
					"code", cpfetch.ErrorCode(err),
					"err", err,
				)
				return nil
			}
			summary = s
			return nil
		})
	}

	g.Go(func() error {
		html, err := e.Fetcher.Fetch(gctx, rawURL)
		if err != nil {
			return err
		}
		scraped, err = e.Content.Extract(html)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fatal(err, rawURL)
	}

	return cpfetch.Merge(scraped, summary), nil
}

// fatal keeps page load timeouts distinguishable and reports every other
// failure as EEXTRACT.
func fatal(err error, rawURL string) error {
	switch cpfetch.ErrorCode(err) {
	case cpfetch.ETIMEOUT, cpfetch.EEXTRACT:
		return err
	}
	return cpfetch.Wrapf(err, cpfetch.EEXTRACT, "extracting %s: %v", rawURL, err)
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
