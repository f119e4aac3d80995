package cpfetch

import (
	"fmt"
	"slices"
	"strconv"
)

// Default values for ProblemData fields that could not be located.
const (
	DefaultTitle       = "Unknown Problem"
	DefaultLimit       = "Not specified"
	DefaultDescription = "See problem statement"
	DefaultFormat      = "See problem statement"
	DefaultSource      = "Codeforces"
	DefaultDifficulty  = "Unknown"
)

// TestCase is a sample input paired with its expected output.
type TestCase struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Valid reports whether both sides of the test case are present.
func (tc TestCase) Valid() bool {
	return tc.Input != "" && tc.Output != ""
}

// ProblemData is the structured description of a single problem.
//
// Text fields are never empty: anything that could not be found holds the
// matching Default constant. Slices are never nil.
type ProblemData struct {
	Title        string     `json:"title"`
	TimeLimit    string     `json:"timeLimit"`
	MemoryLimit  string     `json:"memoryLimit"`
	Description  string     `json:"description"`
	InputFormat  string     `json:"inputFormat"`
	OutputFormat string     `json:"outputFormat"`
	Constraints  []string   `json:"constraints"`
	SampleTests  []TestCase `json:"sampleTests"`
	Source       string     `json:"source"`
	Difficulty   string     `json:"difficulty"`
	Tags         []string   `json:"tags"`

	// Statement is the full statement as Markdown. Empty unless the
	// extractor was configured with a Converter.
	Statement string `json:"statement,omitempty"`
}

// NewProblemData returns a ProblemData with every field at its default.
func NewProblemData() *ProblemData {
	return &ProblemData{
		Title:        DefaultTitle,
		TimeLimit:    DefaultLimit,
		MemoryLimit:  DefaultLimit,
		Description:  DefaultDescription,
		InputFormat:  DefaultFormat,
		OutputFormat: DefaultFormat,
		Constraints:  []string{},
		SampleTests:  []TestCase{},
		Source:       DefaultSource,
		Difficulty:   DefaultDifficulty,
		Tags:         []string{},
	}
}

// RemoteProblemSummary is the canonical problem record published by the API.
type RemoteProblemSummary struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    *int     `json:"rating,omitempty"`
	Tags      []string `json:"tags"`
}

// Merge combines scraped content with API metadata into a new ProblemData.
// Neither argument is modified. A nil summary yields a copy of scraped with
// the default source label.
func Merge(scraped *ProblemData, summary *RemoteProblemSummary) *ProblemData {
	merged := *scraped
	merged.Constraints = slices.Clone(scraped.Constraints)
	merged.SampleTests = slices.Clone(scraped.SampleTests)
	merged.Tags = slices.Clone(scraped.Tags)
	merged.Source = DefaultSource

	if summary == nil {
		return &merged
	}

	if summary.Name != "" {
		merged.Title = summary.Name
	}
	if summary.Rating != nil {
		merged.Difficulty = strconv.Itoa(*summary.Rating)
	}
	if len(summary.Tags) > 0 {
		merged.Tags = slices.Clone(summary.Tags)
	}
	merged.Source = fmt.Sprintf("%s, contest %d, problem %s", DefaultSource, summary.ContestID, summary.Index)

	return &merged
}
