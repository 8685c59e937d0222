package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagelabel"
)

// Ensure KeywordSource implements pagelabel.KeywordSource at compile time.
var _ pagelabel.KeywordSource = (*KeywordSource)(nil)

// KeywordSource loads a keyword corpus from every .txt file under a
// directory tree. Each non-empty line is one keyword or phrase, kept as
// written so padding spaces still bound a match. Files are read in lexical
// walk order.
type KeywordSource struct {
	dir string
}

// NewKeywordSource creates a KeywordSource rooted at dir.
func NewKeywordSource(dir string) *KeywordSource {
	return &KeywordSource{dir: dir}
}

// LoadCorpus returns the corpus. A missing directory yields an empty corpus.
func (s *KeywordSource) LoadCorpus(ctx context.Context) (pagelabel.KeywordCorpus, error) {
	corpus := pagelabel.KeywordCorpus{}

	if _, err := os.Stat(s.dir); errors.Is(err, fs.ErrNotExist) {
		return corpus, nil
	}

	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return describe(path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), TextExt) {
			return nil
		}
		phrases, err := readPhrases(path)
		if err != nil {
			return describe(path, err)
		}
		corpus = append(corpus, phrases...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return corpus, nil
}

func readPhrases(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var phrases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			phrases = append(phrases, line)
		}
	}
	return phrases, scanner.Err()
}

func describe(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
