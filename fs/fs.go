// Package fs provides file-based storage for documents, keyword corpora and
// rendered prompts.
package fs

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagelabel"
)

// TextExt is the extension of raw text documents and prompt files.
const TextExt = ".txt"

// Stem returns name without its directory and extension. A suffix
// containing a space is part of the name, as in "St. Louis".
// Example: exports/C123-45 Store.docx → C123-45 Store
func Stem(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if strings.Contains(ext, " ") {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// TextFileName returns the text file name for a document identifier. An
// identifier already ending in .txt is returned as is; otherwise .txt is
// appended, so dotted words in the identifier are kept.
// Example: C1 Carpet One Mt.Pleasant → C1 Carpet One Mt.Pleasant.txt
func TextFileName(name string) string {
	base := filepath.Base(name)
	if strings.EqualFold(filepath.Ext(base), TextExt) {
		return base
	}
	return base + TextExt
}

// validateName rejects names that would escape the base directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return pagelabel.Errorf(pagelabel.EINVALID, "invalid file name %q", name)
	}
	return nil
}
