package getlinks

import (
	"regexp"
	"slices"
	"strings"
)

// LinkExtractor extracts link targets from anchor tags in raw HTML.
type LinkExtractor interface {
	// ExtractLinks returns at most maxLinks normalized, accepted links found
	// in html. Links are deduplicated and sorted. Scanning stops as soon as
	// maxLinks distinct links have been collected, so a capped result keeps
	// the links that appear first in the document.
	// A maxLinks of zero or less always yields an empty result.
	ExtractLinks(html string, maxLinks int) []string
}

// linkSeparators are cut in this order, each on the result of the previous
// cut. Reordering them changes results.
var linkSeparators = [...]string{"?", "#", ";", "="}

// NormalizeLink truncates link at the first "?", then at the first "#" of
// what remains, then ";" and finally "=".
func NormalizeLink(link string) string {
	for _, sep := range linkSeparators {
		if i := strings.Index(link, sep); i != -1 {
			link = link[:i]
		}
	}
	return link
}

const (
	// LinkScheme is the only accepted link prefix.
	LinkScheme = "https://"

	// forbiddenLinkChars may not appear anywhere in an accepted link.
	forbiddenLinkChars = "\\<>{} "
)

// dotPattern requires a dot somewhere on a single line.
var dotPattern = regexp.MustCompile(`\A[^\r\n]*\.[^\r\n]*\z`)

// AcceptLink reports whether a normalized link is an absolute https URL
// that is safe to treat as a bare link string. The link must contain a dot,
// be longer than 7 bytes, start with "https://" and contain none of
// backslash, "<", ">", "{", "}" or space. The bare "https://" is rejected.
func AcceptLink(link string) bool {
	return dotPattern.MatchString(link) &&
		len(link) > 7 &&
		link[:len(LinkScheme)] == LinkScheme &&
		!strings.ContainsAny(link, forbiddenLinkChars)
}

// LinkSet collects accepted links up to a fixed capacity.
// Implementations of LinkExtractor feed it raw href values in document order.
// It is not safe for concurrent use.
type LinkSet struct {
	max    int
	filter *URLFilter
	links  map[string]struct{}
}

// NewLinkSet returns an empty set holding at most max links.
// A non-nil filter is applied after acceptance; rejected links do not
// count toward the capacity.
func NewLinkSet(max int, filter *URLFilter) *LinkSet {
	return &LinkSet{
		max:    max,
		filter: filter,
		links:  make(map[string]struct{}),
	}
}

// Add normalizes raw and inserts it if it is accepted and passes the filter.
// It reports whether the set is full afterwards; callers stop feeding
// candidates once it returns true.
func (s *LinkSet) Add(raw string) (full bool) {
	if s.Full() {
		return true
	}
	link := NormalizeLink(raw)
	if AcceptLink(link) && s.filter.Match(link) {
		s.links[link] = struct{}{}
	}
	return s.Full()
}

// Full reports whether the set has reached its capacity.
func (s *LinkSet) Full() bool {
	return len(s.links) >= s.max
}

// Len returns the number of links in the set.
func (s *LinkSet) Len() int {
	return len(s.links)
}

// Links returns the collected links sorted in ascending byte order.
// The result is never nil.
func (s *LinkSet) Links() []string {
	links := make([]string, 0, len(s.links))
	for link := range s.links {
		links = append(links, link)
	}
	slices.Sort(links)
	return links
}
