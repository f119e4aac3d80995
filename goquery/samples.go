package goquery

import (
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cpfetch"
)

// maxSampleLength rejects sample blocks of 200 characters or more; such a
// match is almost always a whole-page container rather than a sample.
const maxSampleLength = 200

// Default selector families for sample input and output blocks, in priority order.
var (
	DefaultSampleInputSelectors = []string{
		".sample-test .input pre",
		".sample-tests .input pre",
		".input pre",
		"pre.input",
		"[class*='input'] pre",
	}
	DefaultSampleOutputSelectors = []string{
		".sample-test .output pre",
		".sample-tests .output pre",
		".output pre",
		"pre.output",
		"[class*='output'] pre",
	}
)

// extractSamples pairs input and output blocks by position.
//
// Every input family is tried against every output family; the first
// combination that yields at least one accepted pair wins, even if a later
// combination would yield more.
func extractSamples(doc *goquery.Document, inputSelectors, outputSelectors []string) []cpfetch.TestCase {
	for _, inSel := range inputSelectors {
		inputs := doc.Find(inSel)
		if inputs.Length() == 0 {
			continue
		}
		for _, outSel := range outputSelectors {
			if tests := pairSamples(inputs, doc.Find(outSel)); len(tests) > 0 {
				return tests
			}
		}
	}
	return []cpfetch.TestCase{}
}

func pairSamples(inputs, outputs *goquery.Selection) []cpfetch.TestCase {
	n := min(inputs.Length(), outputs.Length())

	var tests []cpfetch.TestCase
	for i := range n {
		tc := cpfetch.TestCase{
			Input:  selectionText(inputs.Eq(i)),
			Output: selectionText(outputs.Eq(i)),
		}
		if !tc.Valid() || !withinSampleLength(tc.Input) || !withinSampleLength(tc.Output) {
			continue
		}
		tests = append(tests, tc)
	}
	return tests
}

func withinSampleLength(s string) bool {
	return utf8.RuneCountInString(s) < maxSampleLength
}
