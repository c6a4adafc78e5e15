package getlinks

import "io"

// Result holds the links extracted from one document.
type Result struct {
	Document string   `json:"document" yaml:"document"`
	Hash     string   `json:"hash" yaml:"hash"`
	Links    []string `json:"links" yaml:"links"`
}

// Formatter writes extraction results to an output stream.
type Formatter interface {
	Format(w io.Writer, results []*Result) error
}
