package getlinks

import "context"

// Document represents raw HTML read from a named source.
type Document struct {
	// Name identifies where the document came from (a file path or "-").
	Name string

	// HTML is the document text decoded to UTF-8.
	HTML string

	// Hash is a hex-encoded content hash of HTML.
	Hash string
}

// DocumentSource reads HTML documents by name.
type DocumentSource interface {
	// ReadDocument returns the named document.
	// Returns ENOTFOUND if the document does not exist.
	ReadDocument(ctx context.Context, name string) (*Document, error)
}
