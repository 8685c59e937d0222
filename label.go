package pagelabel

import (
	"context"
	"time"
)

// Label is a stored metadata record together with the body it was
// extracted from.
type Label struct {
	ID        string    `json:"id"`
	Metadata  Metadata  `json:"metadata"`
	Body      string    `json:"body"`
	BodyHash  string    `json:"bodyHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the label contains invalid fields.
func (l *Label) Validate() error {
	if l.Metadata.FileName == "" {
		return Errorf(EINVALID, "label file name required")
	}
	return nil
}

// LabelService represents a service for managing stored labels.
type LabelService interface {
	// CreateLabel stores a label, replacing any label with the same file
	// name.
	CreateLabel(ctx context.Context, label *Label) error

	// FindLabelByFileName retrieves a label by document file name.
	// Returns ENOTFOUND if the label does not exist.
	FindLabelByFileName(ctx context.Context, fileName string) (*Label, error)

	// FindLabels retrieves labels matching the filter, ordered by file name.
	FindLabels(ctx context.Context, filter LabelFilter) ([]*Label, error)

	// DeleteLabel permanently removes a label.
	// Returns ENOTFOUND if the label does not exist.
	DeleteLabel(ctx context.Context, fileName string) error
}

// LabelFilter represents a filter for FindLabels.
type LabelFilter struct {
	StoreName    *string `json:"storeName"`
	PageTemplate *string `json:"pageTemplate"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
