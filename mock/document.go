package mock

import (
	"context"

	"github.com/fwojciec/pagelabel"
)

var _ pagelabel.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of pagelabel.DocumentSource.
type DocumentSource struct {
	ListDocumentsFn func(ctx context.Context) ([]string, error)
	LoadDocumentFn  func(ctx context.Context, key string) (*pagelabel.Document, error)
}

func (s *DocumentSource) ListDocuments(ctx context.Context) ([]string, error) {
	return s.ListDocumentsFn(ctx)
}

func (s *DocumentSource) LoadDocument(ctx context.Context, key string) (*pagelabel.Document, error) {
	return s.LoadDocumentFn(ctx, key)
}
