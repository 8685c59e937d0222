package mock

import (
	"context"

	"github.com/fwojciec/pagelabel"
)

var _ pagelabel.Gazetteer = (*Gazetteer)(nil)

// Gazetteer is a mock implementation of pagelabel.Gazetteer.
type Gazetteer struct {
	LocateFn func(ctx context.Context, text string) (*pagelabel.Places, error)
}

func (g *Gazetteer) Locate(ctx context.Context, text string) (*pagelabel.Places, error) {
	return g.LocateFn(ctx, text)
}
