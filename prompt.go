package pagelabel

import (
	"context"
	"strings"
)

// Section headers of a rendered prompt.
const (
	LabelsHeader = "[LABELS]"
	BodyHeader   = "[BODY]"
)

// PromptFields lists the labelled fields in prompt order. The file name is
// an identifier and is never part of a prompt.
var PromptFields = []string{
	ColumnTitle,
	ColumnStoreName,
	ColumnStoreLocation,
	ColumnPageTemplate,
	ColumnKeywords,
}

// RenderLabels renders the labels section of a prompt. This is the prompt
// used at inference time, where the model generates the body.
func RenderLabels(row Row) string {
	var sb strings.Builder
	sb.WriteString(LabelsHeader)
	sb.WriteString("\n\n")
	for _, field := range PromptFields {
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(row[field])
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderPrompt renders a training example: the labels section followed by
// the body section holding the original body text.
func RenderPrompt(row Row, body string) string {
	return RenderLabels(row) + BodyHeader + "\n\n" + body
}

// StripBody removes the body section from a rendered prompt.
func StripBody(prompt string) string {
	if i := strings.Index(prompt, BodyHeader+"\n\n"); i >= 0 {
		return prompt[:i]
	}
	return prompt
}

// ParseLabels recovers the labelled fields from a rendered prompt. Any body
// section is ignored. Returns EINVALID if the labels header is missing.
func ParseLabels(prompt string) (Row, error) {
	labels := StripBody(prompt)
	i := strings.Index(labels, LabelsHeader)
	if i < 0 {
		return nil, Errorf(EINVALID, "prompt missing %s section", LabelsHeader)
	}
	labels = labels[i+len(LabelsHeader):]

	known := make(map[string]bool, len(PromptFields))
	for _, f := range PromptFields {
		known[f] = true
	}

	row := Row{}
	for _, line := range strings.Split(labels, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok || !known[key] {
			continue
		}
		row[key] = value
	}
	return row, nil
}

// PromptStore persists rendered prompts with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PromptStore interface {
	Save(ctx context.Context, name, text string) error
	Commit() error
	Abort() error
}
