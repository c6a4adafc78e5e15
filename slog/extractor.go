// Package slog provides log/slog decorators for getlinks services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/getlinks"
)

// Ensure LoggingExtractor implements getlinks.LinkExtractor.
var _ getlinks.LinkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LinkExtractor with debug logging.
type LoggingExtractor struct {
	next   getlinks.LinkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next getlinks.LinkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractLinks(html string, maxLinks int) (links []string) {
	defer func(begin time.Time) {
		e.logger.Info("extract links",
			"bytes", len(html),
			"max", maxLinks,
			"count", len(links),
			"capped", maxLinks > 0 && len(links) >= maxLinks,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractLinks(html, maxLinks)
}
