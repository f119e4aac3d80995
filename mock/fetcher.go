package mock

import (
	"context"

	"github.com/fwojciec/cpfetch"
)

var _ cpfetch.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of cpfetch.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ cpfetch.MetadataClient = (*MetadataClient)(nil)

// MetadataClient is a mock implementation of cpfetch.MetadataClient.
type MetadataClient struct {
	FetchProblemFn func(ctx context.Context, ref cpfetch.ProblemReference) (*cpfetch.RemoteProblemSummary, error)
}

func (c *MetadataClient) FetchProblem(ctx context.Context, ref cpfetch.ProblemReference) (*cpfetch.RemoteProblemSummary, error) {
	return c.FetchProblemFn(ctx, ref)
}
