package cpfetch

import "context"

// ContentExtractor recovers problem content from rendered page HTML.
type ContentExtractor interface {
	// Extract parses rendered HTML and returns the problem content.
	// The result is a pure function of the input. Source and Difficulty
	// hold defaults unless the page itself carries them.
	Extract(html string) (*ProblemData, error)
}

// ProblemExtractor produces the complete problem description for a URL.
type ProblemExtractor interface {
	// ExtractProblemData parses the URL, gathers metadata and page content,
	// and merges them into a fresh ProblemData.
	// Returns EINVALIDURL for unrecognized URLs, and ETIMEOUT or EEXTRACT
	// when the page cannot be rendered or read.
	ExtractProblemData(ctx context.Context, rawURL string) (*ProblemData, error)
}
