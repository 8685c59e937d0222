package main

import (
	"fmt"

	"github.com/fwojciec/pagelabel/fs"
	"github.com/fwojciec/pagelabel/label"
	plslog "github.com/fwojciec/pagelabel/slog"
)

// Run executes the flatten command.
func (c *FlattenCmd) Run(deps *Dependencies) error {
	source := fs.NewDocumentSource(c.Exports, Decoders())

	f := &label.Flattener{
		Documents:   plslog.NewLoggingDocumentSource(source, deps.Logger),
		Writer:      fs.NewTextWriter(c.DataDir),
		Concurrency: c.Concurrency,
		Logger:      retryLogger(deps),
	}

	report, err := f.Run(deps.Ctx, progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error flattening: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Flattened %s into %s\n", summary(report), c.DataDir)
	return nil
}
