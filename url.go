package cpfetch

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseURL is the site that problem URLs are resolved against.
const DefaultBaseURL = "https://codeforces.com"

// ProblemReference identifies a single problem by contest and index.
type ProblemReference struct {
	ContestID int    `json:"contestId"`
	Index     string `json:"index"`
}

// String returns the short problem code, e.g. "4A".
func (r ProblemReference) String() string {
	return strconv.Itoa(r.ContestID) + r.Index
}

// URL returns the problemset URL of the problem on the given site.
func (r ProblemReference) URL(baseURL string) string {
	return fmt.Sprintf("%s/problemset/problem/%d/%s", strings.TrimRight(baseURL, "/"), r.ContestID, r.Index)
}

// Path shapes of problem pages. Both are anchored at the start of the path
// and accept trailing segments after a slash.
var problemPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/problemset/problem/(\d+)/([A-Za-z]\d?)(?:/|$)`),
	regexp.MustCompile(`^/contest/(\d+)/problem/([A-Za-z]\d?)(?:/|$)`),
}

// ParseProblemURL extracts the problem reference from a problem page URL.
// Returns EINVALIDURL if the URL matches neither accepted shape.
func ParseProblemURL(rawURL string) (ProblemReference, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ProblemReference{}, Errorf(EINVALIDURL, "invalid problem URL %q: %v", rawURL, err)
	}

	for _, re := range problemPathPatterns {
		m := re.FindStringSubmatch(u.Path)
		if m == nil {
			continue
		}

		contestID, err := strconv.Atoi(m[1])
		if err != nil || contestID <= 0 {
			return ProblemReference{}, Errorf(EINVALIDURL, "invalid contest id %q in %q", m[1], rawURL)
		}

		return ProblemReference{
			ContestID: contestID,
			Index:     strings.ToUpper(m[2]),
		}, nil
	}

	return ProblemReference{}, Errorf(EINVALIDURL, "not a problem URL: %q", rawURL)
}
