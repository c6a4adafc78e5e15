package mock

import (
	"context"

	"github.com/fwojciec/getlinks"
)

var _ getlinks.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of getlinks.DocumentSource.
type DocumentSource struct {
	ReadDocumentFn func(ctx context.Context, name string) (*getlinks.Document, error)
}

func (s *DocumentSource) ReadDocument(ctx context.Context, name string) (*getlinks.Document, error) {
	return s.ReadDocumentFn(ctx, name)
}
