package mock

import (
	"context"

	"github.com/fwojciec/pagelabel"
)

var _ pagelabel.Generator = (*Generator)(nil)

// Generator is a mock implementation of pagelabel.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string, cfg pagelabel.SamplingConfig) ([]string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string, cfg pagelabel.SamplingConfig) ([]string, error) {
	return g.GenerateFn(ctx, prompt, cfg)
}
