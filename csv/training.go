package csv

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/fwojciec/pagelabel"
)

// TrainingHeader is the first line of a training dataset.
const TrainingHeader = "# data"

// TrainingWriter writes the single-column training dataset: a header line
// followed by one rendered prompt per row.
type TrainingWriter struct {
	out         io.Writer
	w           *csv.Writer
	wroteHeader bool
}

// NewTrainingWriter creates a TrainingWriter that writes to w.
func NewTrainingWriter(w io.Writer) *TrainingWriter {
	return &TrainingWriter{out: w, w: csv.NewWriter(w)}
}

func (w *TrainingWriter) header() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	_, err := io.WriteString(w.out, TrainingHeader+"\n")
	return err
}

// WritePrompt writes one training example.
func (w *TrainingWriter) WritePrompt(prompt string) error {
	if err := w.header(); err != nil {
		return err
	}
	return w.w.Write([]string{prompt})
}

// Flush writes any buffered data.
func (w *TrainingWriter) Flush() error {
	if err := w.header(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// ReadPrompts reads the prompts of a training dataset. The header line is
// required.
func ReadPrompts(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	if strings.TrimRight(line, "\r\n") != TrainingHeader {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "training dataset must start with %q", TrainingHeader)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = 1
	var prompts []string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pagelabel.Errorf(pagelabel.EINVALID, "read training dataset: %v", err)
		}
		prompts = append(prompts, record[0])
	}
	return prompts, nil
}
