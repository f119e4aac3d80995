package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// minBlockLength excludes incidental short fragments from the description.
	minBlockLength = 20

	// maxDescriptionLength stops accumulation once exceeded. The description
	// is a summary; the full text is available as ProblemData.Statement.
	maxDescriptionLength = 200
)

const (
	sectionTitleSelector = ".section-title"
	limitSelector        = ".time-limit, .memory-limit"
)

// DescriptionLocator accumulates body text from the direct children of
// the first matching statement container.
//
// A child block is used when it is not a section title, holds no limit
// element (which marks the header), and is longer than 20 characters.
// Accumulation stops once the text exceeds 200 characters.
type DescriptionLocator struct {
	Container string
}

// Locate implements Locator.
func (l DescriptionLocator) Locate(doc *goquery.Document) (string, bool) {
	var found string
	doc.Find(l.Container).EachWithBreak(func(_ int, container *goquery.Selection) bool {
		found = describe(container)
		return found == ""
	})
	return found, found != ""
}

func describe(container *goquery.Selection) string {
	var parts []string
	var length int

	container.Children().EachWithBreak(func(_ int, block *goquery.Selection) bool {
		if isSectionTitle(block) {
			return true
		}
		if block.Is(limitSelector) || block.Find(limitSelector).Length() > 0 {
			return true
		}

		text := selectionText(block)
		if utf8.RuneCountInString(text) <= minBlockLength {
			return true
		}

		parts = append(parts, text)
		length += utf8.RuneCountInString(text)
		return length <= maxDescriptionLength
	})

	return strings.Join(parts, " ")
}

// isSectionTitle reports whether block is a section title or a titled
// section such as Input, Output or Note.
func isSectionTitle(block *goquery.Selection) bool {
	if block.Is(sectionTitleSelector) {
		return true
	}
	return block.Children().First().Is(sectionTitleSelector)
}
