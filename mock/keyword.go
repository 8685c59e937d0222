package mock

import (
	"context"

	"github.com/fwojciec/pagelabel"
)

var _ pagelabel.KeywordSource = (*KeywordSource)(nil)

// KeywordSource is a mock implementation of pagelabel.KeywordSource.
type KeywordSource struct {
	LoadCorpusFn func(ctx context.Context) (pagelabel.KeywordCorpus, error)
}

func (s *KeywordSource) LoadCorpus(ctx context.Context) (pagelabel.KeywordCorpus, error) {
	return s.LoadCorpusFn(ctx)
}
