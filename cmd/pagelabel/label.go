package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/csv"
	"github.com/fwojciec/pagelabel/fs"
	"github.com/fwojciec/pagelabel/label"
	plslog "github.com/fwojciec/pagelabel/slog"
)

// MetadataFile is the label CSV written by the label command.
const MetadataFile = "metadata.csv"

// Run executes the label command.
func (c *LabelCmd) Run(deps *Dependencies) error {
	if c.Store && deps.Labels == nil {
		return pagelabel.Errorf(pagelabel.EINTERNAL, "label store not configured")
	}

	corpus, err := fs.NewKeywordSource(c.KeywordCorpus).LoadCorpus(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: loading keyword corpus: %v\n", err)
		return err
	}

	source := fs.NewDocumentSource(c.DataDir, nil)
	l := &label.Labeler{
		Documents:   plslog.NewLoggingDocumentSource(source, deps.Logger),
		Assembler:   pagelabel.NewAssembler(pagelabel.NewLocationExtractor(deps.Gazetteer), corpus),
		Concurrency: c.Concurrency,
		Logger:      retryLogger(deps),
	}
	if c.Store {
		l.Labels = deps.Labels
	}

	report, err := l.Run(deps.Ctx, progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error labelling: %v\n", err)
		return err
	}

	path := filepath.Join(c.OutputDir, MetadataFile)
	if err := writeMetadata(path, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", path, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Labelled %s into %s\n", summary(report), path)
	return nil
}

// writeMetadata writes the metadata CSV file at path.
func writeMetadata(path string, report *pagelabel.BatchReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteMetadata(csv.NewMetadataWriter(f), report); err != nil {
		return err
	}
	return f.Close()
}

// WriteMetadata writes the metadata of every successful outcome in key
// order.
func WriteMetadata(w pagelabel.MetadataWriter, report *pagelabel.BatchReport) error {
	for _, o := range report.Succeeded() {
		if err := w.WriteMetadata(o.Metadata); err != nil {
			return err
		}
	}
	return w.Flush()
}
