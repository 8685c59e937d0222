package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagelabel"
)

// Ensure TextWriter implements pagelabel.DocumentWriter at compile time.
var _ pagelabel.DocumentWriter = (*TextWriter)(nil)

// TextWriter writes flattened document bodies as text files, producing the
// raw dataset DocumentSource reads back.
type TextWriter struct {
	baseDir string
}

// NewTextWriter creates a new TextWriter that writes to the given base
// directory.
func NewTextWriter(baseDir string) *TextWriter {
	return &TextWriter{baseDir: baseDir}
}

// WriteDocument writes the document body to <baseDir>/<file name>, adding
// the .txt extension when the file name lacks it.
func (w *TextWriter) WriteDocument(ctx context.Context, doc *pagelabel.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	name := TextFileName(doc.FileName)
	if err := validateName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.baseDir, name), []byte(doc.Body), 0644)
}
