// Package regexp provides a regular-expression implementation of
// getlinks.LinkExtractor.
//
// Anchors are matched with a single pattern rather than a structural parser.
// Nested quotes, single-quoted attributes and unquoted attributes are not
// recognized; callers relying on these tolerances should keep using this
// extractor rather than the goquery one.
package regexp

import (
	"regexp"

	"github.com/fwojciec/getlinks"
)

// Ensure Extractor implements getlinks.LinkExtractor at compile time.
var _ getlinks.LinkExtractor = (*Extractor)(nil)

// anchorHref matches an opening A tag with a double-quoted href and captures
// the value. Only the tag and attribute names are case-insensitive in
// practice; the captured value is used verbatim.
var anchorHref = regexp.MustCompile(`(?i)<\s*A\s+[^>]*href\s*=\s*"([^"]*)"`)

// Extractor extracts links from anchor tags using a regular expression.
// It holds no mutable state and is safe for concurrent use.
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

// ExtractLinks scans html for anchor hrefs in document order and returns
// at most maxLinks normalized https links, sorted.
func (e *Extractor) ExtractLinks(html string, maxLinks int) []string {
	set := getlinks.NewLinkSet(maxLinks, e.filter)

	// Matches are found one at a time so that nothing past the cap is scanned.
	for pos := 0; !set.Full(); {
		loc := anchorHref.FindStringSubmatchIndex(html[pos:])
		if loc == nil {
			break
		}
		set.Add(html[pos+loc[2] : pos+loc[3]])
		pos += loc[1]
	}

	return set.Links()
}
