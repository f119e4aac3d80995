package mock

import (
	"context"

	"github.com/fwojciec/cpfetch"
)

var _ cpfetch.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of cpfetch.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*cpfetch.ProblemData, error)
}

func (e *ContentExtractor) Extract(html string) (*cpfetch.ProblemData, error) {
	return e.ExtractFn(html)
}

var _ cpfetch.ProblemExtractor = (*ProblemExtractor)(nil)

// ProblemExtractor is a mock implementation of cpfetch.ProblemExtractor.
type ProblemExtractor struct {
	ExtractProblemDataFn func(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error)
}

func (e *ProblemExtractor) ExtractProblemData(ctx context.Context, rawURL string) (*cpfetch.ProblemData, error) {
	return e.ExtractProblemDataFn(ctx, rawURL)
}
