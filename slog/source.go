package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/getlinks"
)

// Ensure LoggingSource implements getlinks.DocumentSource.
var _ getlinks.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with debug logging.
type LoggingSource struct {
	next   getlinks.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next getlinks.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped source and logs the operation.
func (s *LoggingSource) ReadDocument(ctx context.Context, name string) (doc *getlinks.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.HTML)
		}
		s.logger.Info("read document",
			"name", name,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadDocument(ctx, name)
}
