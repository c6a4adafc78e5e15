package goquery_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/getlinks"
	"github.com/fwojciec/getlinks/goquery"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts a single https link", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks(`<a href="https://example.com">x</a>`, 10)

		assert.Equal(t, []string{"https://example.com"}, links)
	})

	t.Run("strips query and fragment", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks(`<a href="https://example.com?x=1#frag">x</a>`, 10)

		assert.Equal(t, []string{"https://example.com"}, links)
	})

	t.Run("rejects http links", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks(`<a href="http://example.com">x</a>`, 10)

		assert.Empty(t, links)
	})

	t.Run("stops at the cap in document order", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://a.com">1</a><a href="https://b.com">2</a><a href="https://c.com">3</a>`

		e := goquery.NewExtractor()
		links := e.ExtractLinks(html, 2)

		assert.Equal(t, []string{"https://a.com", "https://b.com"}, links)
	})

	t.Run("matches uppercase tags and preserves value case", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks(`<A HREF="https://EXAMPLE.com">x</A>`, 10)

		assert.Equal(t, []string{"https://EXAMPLE.com"}, links)
	})

	t.Run("rejects links containing a space", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks(`<a href="https://bad space.com">x</a>`, 10)

		assert.Empty(t, links)
	})

	t.Run("zero max returns empty result", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks(`<a href="https://example.com">x</a>`, 0)

		assert.Empty(t, links)
	})

	t.Run("recognizes single-quoted and unquoted hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<a href='https://single.com'>1</a><a href=https://bare.com>2</a>`

		e := goquery.NewExtractor()
		links := e.ExtractLinks(html, 10)

		assert.Equal(t, []string{"https://bare.com", "https://single.com"}, links)
	})

	t.Run("decodes entities before normalization", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/a&amp;b">x</a>`

		e := goquery.NewExtractor()
		links := e.ExtractLinks(html, 10)

		assert.Equal(t, []string{"https://example.com/a&b"}, links)
	})

	t.Run("ignores anchors in comments", func(t *testing.T) {
		t.Parallel()

		html := `<!-- <a href="https://hidden.com">x</a> --><a href="https://shown.com">y</a>`

		e := goquery.NewExtractor()
		links := e.ExtractLinks(html, 10)

		assert.Equal(t, []string{"https://shown.com"}, links)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links := e.ExtractLinks("", 10)

		assert.NotNil(t, links)
		assert.Empty(t, links)
	})

	t.Run("applies filter before the cap", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://ads.example.com">ad</a><a href="https://example.com/a">a</a><a href="https://example.com/b">b</a>`
		filter := &getlinks.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`//ads\.`)},
		}

		e := goquery.NewExtractor(goquery.WithFilter(filter))
		links := e.ExtractLinks(html, 2)

		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, links)
	})
}
