package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pagelabel"
)

// Compile-time interface verification.
var (
	_ pagelabel.PromptStore = (*PromptStore)(nil)
	_ pagelabel.NodeDecoder = (*NodeDecoder)(nil)
)

// PromptStore is a mock implementation of pagelabel.PromptStore.
type PromptStore struct {
	SaveFn   func(ctx context.Context, name, text string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PromptStore) Save(ctx context.Context, name, text string) error {
	return s.SaveFn(ctx, name, text)
}

func (s *PromptStore) Commit() error {
	return s.CommitFn()
}

func (s *PromptStore) Abort() error {
	return s.AbortFn()
}

// NodeDecoder is a mock implementation of pagelabel.NodeDecoder.
type NodeDecoder struct {
	DecodeFn func(r io.Reader) ([]pagelabel.Node, error)
}

func (d *NodeDecoder) Decode(r io.Reader) ([]pagelabel.Node, error) {
	return d.DecodeFn(r)
}
