package mock

import (
	"context"

	"github.com/fwojciec/pagelabel"
)

var _ pagelabel.LabelService = (*LabelService)(nil)

// LabelService is a mock implementation of pagelabel.LabelService.
type LabelService struct {
	CreateLabelFn         func(ctx context.Context, label *pagelabel.Label) error
	FindLabelByFileNameFn func(ctx context.Context, fileName string) (*pagelabel.Label, error)
	FindLabelsFn          func(ctx context.Context, filter pagelabel.LabelFilter) ([]*pagelabel.Label, error)
	DeleteLabelFn         func(ctx context.Context, fileName string) error
}

func (s *LabelService) CreateLabel(ctx context.Context, label *pagelabel.Label) error {
	return s.CreateLabelFn(ctx, label)
}

func (s *LabelService) FindLabelByFileName(ctx context.Context, fileName string) (*pagelabel.Label, error) {
	return s.FindLabelByFileNameFn(ctx, fileName)
}

func (s *LabelService) FindLabels(ctx context.Context, filter pagelabel.LabelFilter) ([]*pagelabel.Label, error) {
	return s.FindLabelsFn(ctx, filter)
}

func (s *LabelService) DeleteLabel(ctx context.Context, fileName string) error {
	return s.DeleteLabelFn(ctx, fileName)
}
