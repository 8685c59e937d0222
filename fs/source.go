package fs

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagelabel"
)

// Ensure DocumentSource implements pagelabel.DocumentSource at compile time.
var _ pagelabel.DocumentSource = (*DocumentSource)(nil)

// DocumentSource reads documents from a flat directory. Files with the .txt
// extension are raw text; files whose extension has a registered decoder are
// structural exports, flattened on load. Other files are ignored.
type DocumentSource struct {
	dir      string
	decoders map[string]pagelabel.NodeDecoder
}

// NewDocumentSource creates a source over dir. decoders maps lowercase
// extensions (".docx", ".html", ".json") to node decoders.
func NewDocumentSource(dir string, decoders map[string]pagelabel.NodeDecoder) *DocumentSource {
	if decoders == nil {
		decoders = map[string]pagelabel.NodeDecoder{}
	}
	return &DocumentSource{dir: dir, decoders: decoders}
}

func (s *DocumentSource) supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == TextExt {
		return true
	}
	_, ok := s.decoders[ext]
	return ok
}

// ListDocuments returns supported file names in lexical order.
func (s *DocumentSource) ListDocuments(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pagelabel.Errorf(pagelabel.ENOTFOUND, "document directory %q not found", s.dir)
		}
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !s.supported(e.Name()) {
			continue
		}
		keys = append(keys, e.Name())
	}
	return keys, nil
}

// LoadDocument reads and, for exports, flattens a single document. The
// title is the file name stem and the file name is the stem with the .txt
// extension, so exports and their flattened text share an identifier.
func (s *DocumentSource) LoadDocument(ctx context.Context, key string) (*pagelabel.Document, error) {
	if err := validateName(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pagelabel.Errorf(pagelabel.ENOTFOUND, "document %q not found", key)
		}
		return nil, err
	}

	body, err := s.body(key, data)
	if err != nil {
		return nil, err
	}

	return &pagelabel.Document{
		FileName: Stem(key) + TextExt,
		Title:    Stem(key),
		Body:     body,
	}, nil
}

func (s *DocumentSource) body(key string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(key))
	if ext == TextExt {
		return string(data), nil
	}
	dec, ok := s.decoders[ext]
	if !ok {
		return "", pagelabel.Errorf(pagelabel.EINVALID, "unsupported document type %q", ext)
	}
	nodes, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		if pagelabel.ErrorCode(err) == pagelabel.EINVALID {
			return "", err
		}
		return "", pagelabel.Errorf(pagelabel.EINVALID, "decode %s: %v", key, err)
	}
	return pagelabel.Flatten(nodes), nil
}
