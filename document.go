package pagelabel

import "context"

// Document is a single webpage export: a unique file name, the raw title
// (serial number included) and the flattened body text.
type Document struct {
	FileName string `json:"fileName"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.FileName == "" {
		return Errorf(EINVALID, "document file name required")
	}
	return nil
}

// DocumentSource supplies documents to the labelling pipeline.
// Implementations hide whether bodies are read as plain text or decoded
// from structural exports and flattened.
type DocumentSource interface {
	// ListDocuments returns the keys of all documents in the source,
	// sorted in identifier order.
	ListDocuments(ctx context.Context) ([]string, error)

	// LoadDocument retrieves a single document by key.
	// Returns ENOTFOUND if no document exists for the key and EINVALID if
	// its content cannot be decoded.
	LoadDocument(ctx context.Context, key string) (*Document, error)
}

// DocumentWriter persists flattened documents.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) error
}
