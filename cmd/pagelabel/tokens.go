package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/csv"
	"github.com/fwojciec/pagelabel/label"
)

// Run executes the tokens command.
func (c *TokensCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.TrainingCSV)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(deps.Stderr, "error: training CSV %q not found. Run 'pagelabel prompts' first.\n", c.TrainingCSV)
			return pagelabel.Errorf(pagelabel.ENOTFOUND, "training CSV %q not found", c.TrainingCSV)
		}
		return err
	}
	defer f.Close()

	prompts, err := csv.ReadPrompts(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelabel.ErrorMessage(err))
		return err
	}

	var bytes, tokens int
	for _, p := range prompts {
		n, err := deps.Tokens.CountTokens(deps.Ctx, p)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error counting tokens: %v\n", err)
			return err
		}
		bytes += len(p)
		tokens += n
	}

	fmt.Fprintf(deps.Stdout, "%d prompts (%s, %s)\n", len(prompts), label.FormatBytes(bytes), label.FormatTokens(tokens))
	return nil
}
