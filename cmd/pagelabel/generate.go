package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/fs"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	cfg := pagelabel.SamplingConfig{
		Temperature: c.Temperature,
		Samples:     c.Samples,
		BatchSize:   c.BatchSize,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelabel.ErrorMessage(err))
		return err
	}

	rows, err := readRows(c.LabelCSV)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(c.Files) > 0 {
		rows = slices.DeleteFunc(rows, func(row pagelabel.Row) bool {
			return !slices.Contains(c.Files, row[pagelabel.ColumnFileName])
		})
	}

	store := fs.NewPromptStore(c.OutputDir, c.Name)
	if err := Generate(deps.Ctx, deps.Generator, rows, cfg, store, deps.Stdout); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Generated %d records into %s\n", len(rows), store.Dir())
	return nil
}

// Generate generates samples from the labels of every row and saves them,
// joined, under the row's file name. Nothing is kept unless every row
// succeeds.
func Generate(ctx context.Context, gen pagelabel.Generator, rows []pagelabel.Row, cfg pagelabel.SamplingConfig, store pagelabel.PromptStore, progress io.Writer) error {
	for _, row := range rows {
		fileName := row[pagelabel.ColumnFileName]

		samples, err := gen.Generate(ctx, pagelabel.RenderLabels(row), cfg)
		if err != nil {
			_ = store.Abort()
			return fmt.Errorf("generating %s: %w", fileName, err)
		}

		if err := store.Save(ctx, fileName, pagelabel.JoinSamples(samples)); err != nil {
			_ = store.Abort()
			return err
		}
		fmt.Fprintf(progress, "  generated %s (%d samples)\n", fileName, len(samples))
	}

	return store.Commit()
}
