package pagelabel

import (
	"context"
	"strings"
)

// SamplingConfig controls text generation.
type SamplingConfig struct {
	Temperature float32 `json:"temperature"`
	Samples     int     `json:"samples"`
	BatchSize   int     `json:"batchSize"`
}

// DefaultSampling returns the sampling configuration used for generated
// articles.
func DefaultSampling() SamplingConfig {
	return SamplingConfig{Temperature: 0.7, Samples: 5, BatchSize: 1}
}

// Validate returns an error if the configuration contains invalid fields.
func (c SamplingConfig) Validate() error {
	if c.Temperature < 0 {
		return Errorf(EINVALID, "temperature must not be negative")
	}
	if c.Samples <= 0 {
		return Errorf(EINVALID, "sample count must be positive")
	}
	if c.BatchSize <= 0 {
		return Errorf(EINVALID, "batch size must be positive")
	}
	return nil
}

// Generator produces continuations of a prompt with a trained model.
type Generator interface {
	// Generate returns cfg.Samples continuations of prompt.
	// Returns EINVALID if the prompt is empty or cfg is invalid.
	Generate(ctx context.Context, prompt string, cfg SamplingConfig) ([]string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// SampleSeparator delimits generated samples in a single output file.
const SampleSeparator = "===================="

// JoinSamples joins generated samples into one text, each followed by a
// separator line.
func JoinSamples(samples []string) string {
	var sb strings.Builder
	for _, s := range samples {
		sb.WriteString(s)
		sb.WriteString("\n")
		sb.WriteString(SampleSeparator)
		sb.WriteString("\n")
	}
	return sb.String()
}
