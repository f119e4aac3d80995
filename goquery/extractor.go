// Package goquery implements cpfetch.ContentExtractor with CSS selector
// cascades over the rendered problem page.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cpfetch"
)

// Ensure Extractor implements cpfetch.ContentExtractor at compile time.
var _ cpfetch.ContentExtractor = (*Extractor)(nil)

// Label patterns stripped from the start of located text.
var (
	titlePrefix      = regexp.MustCompile(`^[A-Z]\d?\.\s+`)
	timeLimitLabel   = regexp.MustCompile(`(?i)^time limit( per test)?\s*:?\s*`)
	memoryLimitLabel = regexp.MustCompile(`(?i)^memory limit( per test)?\s*:?\s*`)
	inputLabel       = regexp.MustCompile(`(?i)^input\b\s*:?\s*`)
	outputLabel      = regexp.MustCompile(`(?i)^output\b\s*:?\s*`)
	difficultyMarker = regexp.MustCompile(`^\*\s*`)
)

const (
	statementSelector = ".problem-statement, .problemindexholder"
	tagSelector       = ".tag-box"
	difficultyTag     = ".tag-box[title='Difficulty']"
)

// Extractor recovers problem content from rendered HTML.
//
// Each field is located by its own Cascade; the exported fields may be
// extended with locators for new markup variants. Extract does not modify
// the Extractor, so one instance can serve concurrent callers.
type Extractor struct {
	Title        Cascade
	TimeLimit    Cascade
	MemoryLimit  Cascade
	Description  Cascade
	InputFormat  Cascade
	OutputFormat Cascade
	Difficulty   Cascade

	SampleInputSelectors  []string
	SampleOutputSelectors []string

	ConstraintSelectors []string
	ConstraintFallback  string

	// Converter, if set, renders the statement container as Markdown
	// into ProblemData.Statement.
	Converter cpfetch.Converter
}

// NewExtractor creates an Extractor with the default cascades.
func NewExtractor() *Extractor {
	return &Extractor{
		Title: selectorCascade(titlePrefix,
			".problem-statement .header .title",
			".problemindexholder .title",
			".title",
			"h1",
			"h2",
			"h3",
		),
		TimeLimit: selectorCascade(timeLimitLabel,
			".time-limit",
			"[class*='time-limit']",
			"[class*='timelimit']",
		),
		MemoryLimit: selectorCascade(memoryLimitLabel,
			".memory-limit",
			"[class*='memory-limit']",
			"[class*='memorylimit']",
		),
		Description: Cascade{
			DescriptionLocator{Container: ".problem-statement"},
			DescriptionLocator{Container: ".problemindexholder"},
			DescriptionLocator{Container: ".ttypography"},
		},
		InputFormat: selectorCascade(inputLabel,
			".input-specification",
			"[class*='input-spec']",
			"[class*='input-format']",
		),
		OutputFormat: selectorCascade(outputLabel,
			".output-specification",
			"[class*='output-spec']",
			"[class*='output-format']",
		),
		Difficulty: selectorCascade(difficultyMarker,
			difficultyTag,
		),
		SampleInputSelectors:  DefaultSampleInputSelectors,
		SampleOutputSelectors: DefaultSampleOutputSelectors,
		ConstraintSelectors:   DefaultConstraintSelectors,
		ConstraintFallback:    DefaultConstraintFallback,
	}
}

// Extract parses rendered HTML and returns the problem content.
// Fields that cannot be located keep their defaults.
func (e *Extractor) Extract(html string) (*cpfetch.ProblemData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cpfetch.Wrapf(err, cpfetch.EEXTRACT, "failed to parse HTML: %v", err)
	}

	data := cpfetch.NewProblemData()
	data.Title = e.Title.LocateOr(doc, cpfetch.DefaultTitle)
	data.TimeLimit = e.TimeLimit.LocateOr(doc, cpfetch.DefaultLimit)
	data.MemoryLimit = e.MemoryLimit.LocateOr(doc, cpfetch.DefaultLimit)
	data.Description = e.Description.LocateOr(doc, cpfetch.DefaultDescription)
	data.InputFormat = e.InputFormat.LocateOr(doc, cpfetch.DefaultFormat)
	data.OutputFormat = e.OutputFormat.LocateOr(doc, cpfetch.DefaultFormat)
	data.Difficulty = e.Difficulty.LocateOr(doc, cpfetch.DefaultDifficulty)
	data.SampleTests = extractSamples(doc, e.SampleInputSelectors, e.SampleOutputSelectors)
	data.Constraints = extractConstraints(doc, e.ConstraintSelectors, e.ConstraintFallback)
	data.Tags = extractTags(doc)

	if e.Converter != nil {
		data.Statement = e.statement(doc)
	}

	return data, nil
}

// statement converts the first statement container to Markdown.
// Conversion failures leave the statement empty.
func (e *Extractor) statement(doc *goquery.Document) string {
	container := doc.Find(statementSelector).First()
	if container.Length() == 0 {
		return ""
	}
	html, err := goquery.OuterHtml(container)
	if err != nil {
		return ""
	}
	md, err := e.Converter.Convert(html)
	if err != nil {
		return ""
	}
	return md
}

// extractTags returns the problem tags shown on the page, excluding the
// difficulty marker.
func extractTags(doc *goquery.Document) []string {
	tags := []string{}
	doc.Find(tagSelector).Not(difficultyTag).Each(func(_ int, sel *goquery.Selection) {
		if text := selectionText(sel); text != "" {
			tags = append(tags, text)
		}
	})
	return tags
}
