package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Locator finds one piece of text in a parsed page.
// It reports false when nothing usable was found.
type Locator interface {
	Locate(doc *goquery.Document) (string, bool)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(doc *goquery.Document) (string, bool)

// Locate calls f(doc).
func (f LocatorFunc) Locate(doc *goquery.Document) (string, bool) {
	return f(doc)
}

// Cascade tries locators in order and returns the first non-empty result.
// Supporting a new markup variant means appending a locator.
type Cascade []Locator

// Locate implements Locator.
func (c Cascade) Locate(doc *goquery.Document) (string, bool) {
	for _, l := range c {
		if text, ok := l.Locate(doc); ok && text != "" {
			return text, true
		}
	}
	return "", false
}

// LocateOr returns the cascade's result, or def when no locator matched.
func (c Cascade) LocateOr(doc *goquery.Document, def string) string {
	if text, ok := c.Locate(doc); ok {
		return text
	}
	return def
}

// SelectorLocator returns the cleaned text of the first element matching
// Selector whose text is non-empty after Strip is removed from its start.
type SelectorLocator struct {
	Selector string

	// Strip, if set, is removed from the start of the text.
	Strip *regexp.Regexp
}

// Selector returns a SelectorLocator with no label stripping.
func Selector(selector string) SelectorLocator {
	return SelectorLocator{Selector: selector}
}

// Labeled returns a SelectorLocator that strips a leading label.
func Labeled(selector string, strip *regexp.Regexp) SelectorLocator {
	return SelectorLocator{Selector: selector, Strip: strip}
}

// Locate implements Locator.
func (l SelectorLocator) Locate(doc *goquery.Document) (string, bool) {
	var found string
	doc.Find(l.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := selectionText(sel)
		if l.Strip != nil {
			text = cleanText(l.Strip.ReplaceAllString(text, ""))
		}
		if text == "" {
			return true
		}
		found = text
		return false
	})
	return found, found != ""
}

// selectorCascade builds a cascade of SelectorLocators sharing one label pattern.
func selectorCascade(strip *regexp.Regexp, selectors ...string) Cascade {
	c := make(Cascade, 0, len(selectors))
	for _, s := range selectors {
		c = append(c, SelectorLocator{Selector: s, Strip: strip})
	}
	return c
}
