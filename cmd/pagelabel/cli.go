package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/label"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Set by Main for the commands that need them.
	Labels    pagelabel.LabelService
	Gazetteer pagelabel.Gazetteer
	Generator pagelabel.Generator
	Tokens    pagelabel.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Flatten  FlattenCmd  `cmd:"" help:"Flatten document exports into raw text files"`
	Label    LabelCmd    `cmd:"" help:"Extract metadata from raw text files into a label CSV"`
	Prompts  PromptsCmd  `cmd:"" help:"Render training prompts from a label CSV"`
	Generate GenerateCmd `cmd:"" help:"Generate page bodies for labelled records"`
	Labels   LabelsCmd   `cmd:"" help:"Inspect stored labels"`
	Tokens   TokensCmd   `cmd:"" help:"Report the token size of a training dataset"`
}

// FlattenCmd is the "flatten" subcommand.
type FlattenCmd struct {
	Exports     string `short:"e" default:"data/exports" help:"Directory containing .docx, .html and Google Docs .json exports"`
	DataDir     string `short:"d" default:"data/raw" help:"Directory to write flattened text files"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent document limit"`
}

// LabelCmd is the "label" subcommand.
type LabelCmd struct {
	DataDir       string `short:"d" default:"data/raw" help:"Directory containing raw text documents"`
	OutputDir     string `short:"o" default:"data/external" help:"Directory for the metadata CSV"`
	KeywordCorpus string `short:"k" default:"data/interim/keyword_corpus" help:"Directory containing text files of keywords and phrases"`
	Concurrency   int    `short:"c" default:"8" help:"Concurrent document limit"`
	Store         bool   `short:"s" help:"Also store labels in the database"`
}

// PromptsCmd is the "prompts" subcommand.
type PromptsCmd struct {
	LabelCSV    string `short:"c" name:"label-csv" default:"data/external/metadata.csv" help:"CSV file containing label data"`
	DataDir     string `short:"d" default:"data/raw" help:"Directory containing raw text documents"`
	OutputDir   string `short:"o" default:"data/processed" help:"Output directory for prompt files"`
	TrainingCSV string `short:"t" name:"training-csv" default:"data/processed/training_data.csv" help:"Destination CSV file for training"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	LabelCSV    string   `short:"c" name:"label-csv" default:"data/external/metadata.csv" help:"CSV file containing label data"`
	OutputDir   string   `short:"o" default:"data/processed" help:"Parent directory for generated files"`
	Name        string   `short:"n" default:"generated" help:"Name of the generated output directory"`
	Files       []string `short:"f" name:"file" help:"Generate only for these file names (repeatable)"`
	Model       string   `env:"PAGELABEL_MODEL" default:"gemini-2.5-flash" help:"Gemini model name"`
	Samples     int      `default:"5" help:"Samples to generate per record"`
	Temperature float32  `default:"0.7" help:"Sampling temperature"`
	BatchSize   int      `default:"1" help:"Samples requested per API call"`
	RPS         float64  `name:"rps" default:"1" help:"Maximum API requests per second"`
}

// LabelsCmd is the "labels" subcommand group.
type LabelsCmd struct {
	List   LabelsListCmd   `cmd:"" help:"List stored labels"`
	Show   LabelsShowCmd   `cmd:"" help:"Show a stored label"`
	Delete LabelsDeleteCmd `cmd:"" help:"Delete a stored label"`
}

// LabelsListCmd is the "labels list" subcommand.
type LabelsListCmd struct {
	StoreName string `name:"store-name" help:"Only labels with this store name"`
	Template  string `name:"template" help:"Only labels with this page template"`
	Limit     int    `short:"l" help:"Maximum number of labels"`
	Offset    int    `help:"Number of labels to skip"`
}

// LabelsShowCmd is the "labels show" subcommand.
type LabelsShowCmd struct {
	FileName string `arg:"" help:"Document file name"`
	Body     bool   `help:"Include the document body"`
}

// LabelsDeleteCmd is the "labels delete" subcommand.
type LabelsDeleteCmd struct {
	FileName string `arg:"" help:"Document file name"`
	Force    bool   `help:"Confirm deletion"`
}

// TokensCmd is the "tokens" subcommand.
type TokensCmd struct {
	TrainingCSV string `short:"t" name:"training-csv" default:"data/processed/training_data.csv" help:"Training CSV file"`
}

// progress returns a progress callback printing to the command's writers.
func progress(deps *Dependencies) label.ProgressFunc {
	return func(event label.ProgressEvent) {
		switch event.Type {
		case label.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d documents\n", event.Total)
		case label.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", label.TruncateKey(event.Key, 60), event.Error)
		case label.ProgressFinished:
			// Summary printed by the command
		}
	}
}

// retryLogger returns a retry logger writing to stderr.
func retryLogger(deps *Dependencies) label.LogFunc {
	return func(format string, args ...any) {
		fmt.Fprintf(deps.Stderr, format+"\n", args...)
	}
}

// summary formats the outcome counts of a report.
func summary(report *pagelabel.BatchReport) string {
	s := fmt.Sprintf("%d of %d documents", len(report.Succeeded()), report.Len())
	if failures := label.FormatFailures(report.FailureCounts()); failures != "" {
		s += fmt.Sprintf(" (failed: %s)", failures)
	}
	return s
}
