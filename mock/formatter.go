package mock

import (
	"io"

	"github.com/fwojciec/getlinks"
)

var _ getlinks.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of getlinks.Formatter.
type Formatter struct {
	FormatFn func(w io.Writer, results []*getlinks.Result) error
}

func (f *Formatter) Format(w io.Writer, results []*getlinks.Result) error {
	return f.FormatFn(w, results)
}
