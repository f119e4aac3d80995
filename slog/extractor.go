package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cpfetch"
)

// Ensure LoggingContentExtractor implements cpfetch.ContentExtractor.
var _ cpfetch.ContentExtractor = (*LoggingContentExtractor)(nil)

// LoggingContentExtractor wraps a ContentExtractor with debug logging of
// which fields fell back to their defaults.
type LoggingContentExtractor struct {
	next   cpfetch.ContentExtractor
	logger *slog.Logger
}

// NewLoggingContentExtractor creates a new LoggingContentExtractor.
func NewLoggingContentExtractor(next cpfetch.ContentExtractor, logger *slog.Logger) *LoggingContentExtractor {
	return &LoggingContentExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingContentExtractor) Extract(html string) (data *cpfetch.ProblemData, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if data != nil {
			attrs = append(attrs,
				"title", data.Title,
				"samples", len(data.SampleTests),
				"constraints", len(data.Constraints),
				"defaulted", defaulted(data),
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}

// defaulted lists the fields no locator could find.
func defaulted(data *cpfetch.ProblemData) []string {
	var fields []string
	check := func(name, value, def string) {
		if value == def {
			fields = append(fields, name)
		}
	}
	check("title", data.Title, cpfetch.DefaultTitle)
	check("timeLimit", data.TimeLimit, cpfetch.DefaultLimit)
	check("memoryLimit", data.MemoryLimit, cpfetch.DefaultLimit)
	check("description", data.Description, cpfetch.DefaultDescription)
	check("inputFormat", data.InputFormat, cpfetch.DefaultFormat)
	check("outputFormat", data.OutputFormat, cpfetch.DefaultFormat)
	if len(data.SampleTests) == 0 {
		fields = append(fields, "sampleTests")
	}
	return fields
}

// Ensure LoggingProblemExtractor implements cpfetch.ProblemExtractor.
var _ cpfetch.ProblemExtractor = (*LoggingProblemExtractor)(nil)

// LoggingProblemExtractor wraps a ProblemExtractor with logging.
type LoggingProblemExtractor struct {
	next   cpfetch.ProblemExtractor
	logger *slog.Logger
}

// NewLoggingProblemExtractor creates a new LoggingProblemExtractor.
func NewLoggingProblemExtractor(next cpfetch.ProblemExtractor, logger *slog.Logger) *LoggingProblemExtractor {
	return &LoggingProblemExtractor{next: next, logger: logger}
}

// ExtractProblemData delegates to the wrapped extractor and logs the call.
func (e *LoggingProblemExtractor) ExtractProblemData(ctx context.Context, rawURL string) (data *cpfetch.ProblemData, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", rawURL,
			"duration", time.Since(begin),
		}
		if data != nil {
			attrs = append(attrs, "title", data.Title, "source", data.Source)
		}
		if err != nil {
			attrs = append(attrs, "code", cpfetch.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract problem", attrs...)
	}(time.Now())
	return e.next.ExtractProblemData(ctx, rawURL)
}
