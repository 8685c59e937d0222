package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/csv"
	"github.com/fwojciec/pagelabel/fs"
)

// PromptsDir is the directory, under the output directory, holding one
// rendered prompt per record.
const PromptsDir = "prompts"

// Run executes the prompts command.
func (c *PromptsCmd) Run(deps *Dependencies) error {
	rows, err := readRows(c.LabelCSV)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	source := fs.NewDocumentSource(c.DataDir, nil)
	store := fs.NewPromptStore(c.OutputDir, PromptsDir)

	if err := os.MkdirAll(filepath.Dir(c.TrainingCSV), 0755); err != nil {
		return err
	}
	f, err := os.Create(c.TrainingCSV)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()
	training := csv.NewTrainingWriter(f)

	for _, row := range rows {
		fileName := row[pagelabel.ColumnFileName]
		doc, err := source.LoadDocument(deps.Ctx, fs.TextFileName(fileName))
		if err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s: %v\n", fileName, err)
			return err
		}

		prompt := pagelabel.RenderPrompt(row, doc.Body)
		if err := store.Save(deps.Ctx, fileName, prompt); err != nil {
			_ = store.Abort()
			return err
		}
		if err := training.WritePrompt(prompt); err != nil {
			_ = store.Abort()
			return err
		}
	}

	if err := training.Flush(); err != nil {
		_ = store.Abort()
		return err
	}
	if err := f.Close(); err != nil {
		_ = store.Abort()
		return err
	}
	if err := store.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Rendered %d prompts into %s and %s\n", len(rows), store.Dir(), c.TrainingCSV)
	return nil
}

// readRows reads the records of a label CSV file.
func readRows(path string) ([]pagelabel.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pagelabel.Errorf(pagelabel.ENOTFOUND, "label CSV %q not found", path)
		}
		return nil, err
	}
	defer f.Close()
	return csv.ReadRows(f)
}
