package main

import (
	"fmt"

	"github.com/fwojciec/pagelabel"
)

// Run executes the labels list command.
func (c *LabelsListCmd) Run(deps *Dependencies) error {
	filter := pagelabel.LabelFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.StoreName != "" {
		filter.StoreName = &c.StoreName
	}
	if c.Template != "" {
		filter.PageTemplate = &c.Template
	}

	labels, err := deps.Labels.FindLabels(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelabel.ErrorMessage(err))
		return err
	}

	if len(labels) == 0 {
		fmt.Fprintln(deps.Stdout, "No labels found. Use 'pagelabel label --store' to create some.")
		return nil
	}

	for _, l := range labels {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", l.Metadata.FileName, l.Metadata.StoreName, l.Metadata.PageTemplate)
	}
	return nil
}

// Run executes the labels show command.
func (c *LabelsShowCmd) Run(deps *Dependencies) error {
	l, err := deps.Labels.FindLabelByFileName(deps.Ctx, c.FileName)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelabel.ErrorMessage(err))
		return err
	}

	row := l.Metadata.Row()
	if c.Body {
		fmt.Fprint(deps.Stdout, pagelabel.RenderPrompt(row, l.Body))
		return nil
	}
	fmt.Fprint(deps.Stdout, pagelabel.RenderLabels(row))
	return nil
}

// Run executes the labels delete command.
func (c *LabelsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagelabel.Errorf(pagelabel.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Labels.DeleteLabel(deps.Ctx, c.FileName); err != nil {
		if pagelabel.ErrorCode(err) == pagelabel.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: label %q not found. Use 'pagelabel labels list' to see stored labels.\n", c.FileName)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelabel.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted label %q\n", c.FileName)
	return nil
}
