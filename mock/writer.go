package mock

import (
	"context"

	"github.com/fwojciec/pagelabel"
)

var (
	_ pagelabel.DocumentWriter = (*DocumentWriter)(nil)
	_ pagelabel.MetadataWriter = (*MetadataWriter)(nil)
)

// DocumentWriter is a mock implementation of pagelabel.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *pagelabel.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *pagelabel.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}

// MetadataWriter is a mock implementation of pagelabel.MetadataWriter.
type MetadataWriter struct {
	WriteMetadataFn func(m *pagelabel.Metadata) error
	FlushFn         func() error
}

func (w *MetadataWriter) WriteMetadata(m *pagelabel.Metadata) error {
	return w.WriteMetadataFn(m)
}

func (w *MetadataWriter) Flush() error {
	return w.FlushFn()
}
