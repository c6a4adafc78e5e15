package main

import (
	"fmt"

	"github.com/fwojciec/getlinks"
	"github.com/fwojciec/getlinks/bloom"
	"github.com/fwojciec/getlinks/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
// Documents are processed concurrently; results keep argument order.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	names := c.Names
	if len(names) == 0 {
		names = []string{fs.StdinName}
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]*getlinks.Result, len(names))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			doc, err := deps.Source.ReadDocument(gctx, name)
			if err != nil {
				return err
			}
			results[i] = &getlinks.Result{
				Document: doc.Name,
				Hash:     doc.Hash,
				Links:    deps.Extractor.ExtractLinks(doc.HTML, c.MaxLinks),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if c.Unique {
		suppressSeen(results, c.FPRate)
	}

	return deps.Formatter.Format(deps.Stdout, results)
}

// suppressSeen drops links that already appeared in an earlier result.
// Membership is tracked with a Bloom filter, so a small fraction of
// unseen links may be dropped as well.
func suppressSeen(results []*getlinks.Result, fpRate float64) {
	var total uint
	for _, r := range results {
		total += uint(len(r.Links))
	}
	seen := bloom.NewFilter(max(total, 1), fpRate)

	for _, r := range results {
		kept := make([]string, 0, len(r.Links))
		for _, link := range r.Links {
			if !seen.TestAndAdd(link) {
				kept = append(kept, link)
			}
		}
		r.Links = kept
	}
}

// errorMessage returns the user-facing message for err. Application errors
// carry their own message; anything else is shown as-is.
func errorMessage(err error) string {
	if getlinks.ErrorCode(err) == getlinks.EINTERNAL {
		return err.Error()
	}
	return getlinks.ErrorMessage(err)
}
