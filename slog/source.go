package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelabel"
)

// Ensure LoggingDocumentSource implements pagelabel.DocumentSource.
var _ pagelabel.DocumentSource = (*LoggingDocumentSource)(nil)

// LoggingDocumentSource wraps a DocumentSource with debug logging.
type LoggingDocumentSource struct {
	next   pagelabel.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next pagelabel.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// ListDocuments delegates to the wrapped source and logs the operation.
func (s *LoggingDocumentSource) ListDocuments(ctx context.Context) (keys []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list documents",
			"count", len(keys),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListDocuments(ctx)
}

// LoadDocument delegates to the wrapped source and logs the operation.
func (s *LoggingDocumentSource) LoadDocument(ctx context.Context, key string) (doc *pagelabel.Document, err error) {
	defer func(begin time.Time) {
		var size int
		if doc != nil {
			size = len(doc.Body)
		}
		s.logger.Debug("load document",
			"key", key,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadDocument(ctx, key)
}
