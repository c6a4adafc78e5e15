package mock

import "github.com/fwojciec/getlinks"

var _ getlinks.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of getlinks.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, maxLinks int) []string
}

func (e *LinkExtractor) ExtractLinks(html string, maxLinks int) []string {
	return e.ExtractLinksFn(html, maxLinks)
}
