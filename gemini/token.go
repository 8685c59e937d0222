// Package gemini provides the generative model boundary backed by Google
// Gemini.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagelabel"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ pagelabel.TokenCounter = (*TokenCounter)(nil)

// TokenCounter sizes training text with the local tokenizer of a Gemini
// model. Counting never calls the API.
type TokenCounter struct {
	model string
	local *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model, or for DefaultModel when
// model is empty.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	local, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer for %s: %w", model, err)
	}
	return &TokenCounter{model: model, local: local}, nil
}

// Model returns the name of the model whose tokenizer is used.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens returns the number of tokens text occupies as a single user
// turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.local.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, pagelabel.Errorf(pagelabel.EINTERNAL, "count tokens: %v", err)
	}
	return int(result.TotalTokens), nil
}
