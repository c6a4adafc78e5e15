// Package goquery provides an HTML-parser implementation of
// getlinks.LinkExtractor built on github.com/PuerkitoBio/goquery.
//
// Unlike the regexp extractor it sees the document as parsed by a browser:
// entities in href values are decoded, single-quoted and unquoted
// attributes are recognized, and anchors inside comments or scripts are
// ignored. Normalization, acceptance and the cap are identical.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/getlinks"
)

// Ensure Extractor implements getlinks.LinkExtractor at compile time.
var _ getlinks.LinkExtractor = (*Extractor)(nil)

// Extractor extracts links from anchor elements of a parsed HTML document.
type Extractor struct {
	filter *getlinks.URLFilter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFilter restricts accepted links to those matching f.
// Filtered links do not count toward maxLinks.
func WithFilter(f *getlinks.URLFilter) Option {
	return func(e *Extractor) {
		e.filter = f
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLinks parses html and returns at most maxLinks normalized https
// links taken from a[href] elements in document order, sorted.
func (e *Extractor) ExtractLinks(html string, maxLinks int) []string {
	set := getlinks.NewLinkSet(maxLinks, e.filter)
	if set.Full() {
		return set.Links()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// The HTML5 parser recovers from malformed markup; an error here
		// means the reader failed, which cannot happen for a string.
		return set.Links()
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		return !set.Add(href)
	})

	return set.Links()
}
