// Package http provides net/http implementations of cpfetch services.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/cpfetch"
	"golang.org/x/time/rate"
)

// Defaults for MetadataClient.
const (
	DefaultAPIBaseURL = "https://codeforces.com/api"
	DefaultTimeout    = 10 * time.Second

	// DefaultRateLimit matches the API's limit of one call every two seconds.
	DefaultRateLimit = 0.5
)

// DefaultUserAgent identifies the client to the API.
const DefaultUserAgent = "cpfetch/1.0 (+https://github.com/fwojciec/cpfetch)"

// statusOK is the success marker in API responses.
const statusOK = "OK"

// Ensure MetadataClient implements cpfetch.MetadataClient at compile time.
var _ cpfetch.MetadataClient = (*MetadataClient)(nil)

// MetadataClient looks up problems through the problemset.problems API method.
// The API has no single-problem lookup, so every call downloads the full list
// and scans it. MetadataClient is safe for concurrent use; calls share one
// rate limiter.
type MetadataClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
	timeout   time.Duration
	rps       float64
}

// Option configures a MetadataClient.
type Option func(*MetadataClient)

// WithBaseURL sets the API base URL.
// Defaults to DefaultAPIBaseURL if not specified.
func WithBaseURL(u string) Option {
	return func(c *MetadataClient) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *MetadataClient) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with API requests.
func WithUserAgent(ua string) Option {
	return func(c *MetadataClient) {
		c.userAgent = ua
	}
}

// WithRateLimit sets the maximum number of API requests per second.
// A non-positive value disables rate limiting.
func WithRateLimit(rps float64) Option {
	return func(c *MetadataClient) {
		c.rps = rps
	}
}

// NewMetadataClient creates a new MetadataClient.
func NewMetadataClient(opts ...Option) *MetadataClient {
	c := &MetadataClient{
		baseURL:   DefaultAPIBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		rps:       DefaultRateLimit,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}
	if c.rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(c.rps), 1)
	}

	return c
}

// problemsetResponse is the envelope of the problemset.problems method.
type problemsetResponse struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  struct {
		Problems []cpfetch.RemoteProblemSummary `json:"problems"`
	} `json:"result"`
}

// FetchProblem returns the API record matching both the contest id and index of ref.
func (c *MetadataClient) FetchProblem(ctx context.Context, ref cpfetch.ProblemReference) (*cpfetch.RemoteProblemSummary, error) {
	resp, err := c.problems(ctx)
	if err != nil {
		return nil, err
	}

	for i := range resp.Result.Problems {
		p := &resp.Result.Problems[i]
		if p.ContestID == ref.ContestID && p.Index == ref.Index {
			return p, nil
		}
	}

	return nil, cpfetch.Errorf(cpfetch.EUNAVAILABLE, "problem %s not found in problemset", ref)
}

func (c *MetadataClient) problems(ctx context.Context) (*problemsetResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, cpfetch.Wrapf(err, cpfetch.EUNAVAILABLE, "waiting for rate limit: %v", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/problemset.problems", nil)
	if err != nil {
		return nil, cpfetch.Wrapf(err, cpfetch.EUNAVAILABLE, "building request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, cpfetch.Wrapf(err, cpfetch.EUNAVAILABLE, "requesting problemset: %v", err)
	}
	defer resp.Body.Close()

	// Failed calls still carry a JSON envelope with a comment, so the body
	// is decoded before the status code is considered.
	var body problemsetResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, cpfetch.Errorf(cpfetch.EUNAVAILABLE, "HTTP %d from problemset API", resp.StatusCode)
		}
		return nil, cpfetch.Wrapf(err, cpfetch.EUNAVAILABLE, "decoding problemset: %v", err)
	}

	if body.Status != statusOK {
		return nil, cpfetch.Errorf(cpfetch.EUNAVAILABLE, "problemset API status %s", describeFailure(body, resp.StatusCode))
	}

	return &body, nil
}

func describeFailure(body problemsetResponse, code int) string {
	status := body.Status
	if status == "" {
		status = fmt.Sprintf("missing (HTTP %d)", code)
	}
	if body.Comment != "" {
		return fmt.Sprintf("%s: %s", status, body.Comment)
	}
	return status
}
