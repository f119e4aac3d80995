package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Inequality patterns for bounded variables, e.g. "1 ≤ w ≤ 100" and
// "1 ≤ n ≤ 2·10^5". A bound written with a power of ten also matches the
// plain pattern up to the base, so both strings are reported.
var (
	boundedPattern = regexp.MustCompile(
		`\d+\s*(?:≤|<=|\\leq|\\le)\s*[A-Za-z_]\w*\s*(?:≤|<=|\\leq|\\le)\s*\d+`)
	powerBoundedPattern = regexp.MustCompile(
		`\d+\s*(?:≤|<=|\\leq|\\le)\s*[A-Za-z_]\w*\s*(?:≤|<=|\\leq|\\le)\s*(?:\d+\s*(?:·|\*|\\cdot)\s*)?10\s*\^\s*\{?\d+\}?`)
)

// Default selectors holding constraint text, and the fallback used when
// none of them match.
var (
	DefaultConstraintSelectors = []string{".constraints", ".input-specification", ".note"}
	DefaultConstraintFallback  = ".problem-statement"
)

// extractConstraints collects inequality constraints from the note and
// constraint sections of the page. Matches of the plain pattern come first,
// followed by matches of the power-of-ten pattern; duplicates are kept.
func extractConstraints(doc *goquery.Document, selectors []string, fallback string) []string {
	var parts []string
	for _, s := range selectors {
		doc.Find(s).Each(func(_ int, sel *goquery.Selection) {
			if text := selectionText(sel); text != "" {
				parts = append(parts, text)
			}
		})
	}
	text := strings.Join(parts, " ")
	if text == "" && fallback != "" {
		text = selectionText(doc.Find(fallback))
	}

	constraints := []string{}
	for _, re := range []*regexp.Regexp{boundedPattern, powerBoundedPattern} {
		for _, m := range re.FindAllString(text, -1) {
			constraints = append(constraints, cleanText(m))
		}
	}
	return constraints
}
