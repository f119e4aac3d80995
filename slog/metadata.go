package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cpfetch"
)

// Ensure LoggingMetadataClient implements cpfetch.MetadataClient.
var _ cpfetch.MetadataClient = (*LoggingMetadataClient)(nil)

// LoggingMetadataClient wraps a MetadataClient with logging.
type LoggingMetadataClient struct {
	next   cpfetch.MetadataClient
	logger *slog.Logger
}

// NewLoggingMetadataClient creates a new LoggingMetadataClient.
func NewLoggingMetadataClient(next cpfetch.MetadataClient, logger *slog.Logger) *LoggingMetadataClient {
	return &LoggingMetadataClient{next: next, logger: logger}
}

// FetchProblem delegates to the wrapped client and logs the lookup.
func (c *LoggingMetadataClient) FetchProblem(ctx context.Context, ref cpfetch.ProblemReference) (summary *cpfetch.RemoteProblemSummary, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"problem", ref.String(),
			"duration", time.Since(begin),
		}
		if summary != nil {
			attrs = append(attrs, "name", summary.Name)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		c.logger.Info("metadata", attrs...)
	}(time.Now())
	return c.next.FetchProblem(ctx, ref)
}
