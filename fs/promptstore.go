package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagelabel"
)

// Ensure PromptStore implements pagelabel.PromptStore at compile time.
var _ pagelabel.PromptStore = (*PromptStore)(nil)

// PromptStore implements pagelabel.PromptStore with atomic update semantics.
// Prompts are saved to a temporary directory, then moved atomically on Commit.
type PromptStore struct {
	baseDir string
	name    string
}

// NewPromptStore creates a new PromptStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewPromptStore(baseDir, name string) *PromptStore {
	return &PromptStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *PromptStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the directory prompts are committed to.
func (s *PromptStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes text as <name>.txt in the temporary directory. A name already
// ending in .txt is used as is.
func (s *PromptStore) Save(ctx context.Context, name, text string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.tempDir(), TextFileName(name)), []byte(text), 0644)
}

func (s *PromptStore) Commit() error {
	// Nothing saved yet; commit an empty directory
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.Dir())
}

func (s *PromptStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
