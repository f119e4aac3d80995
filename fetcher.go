package cpfetch

import "context"

// PageFetcher retrieves the rendered DOM of a problem page.
// Implementations may use browser automation to handle JavaScript-rendered content.
type PageFetcher interface {
	// Fetch navigates to the URL, waits for the statement to render,
	// and returns the serialized DOM.
	// Returns ETIMEOUT if the page does not load in time.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// MetadataClient looks up canonical problem metadata.
type MetadataClient interface {
	// FetchProblem returns the API record for the referenced problem.
	// Returns EUNAVAILABLE if the lookup fails for any reason.
	FetchProblem(ctx context.Context, ref ProblemReference) (*RemoteProblemSummary, error)
}
