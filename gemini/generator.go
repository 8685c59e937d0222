package gemini

import (
	"context"

	"github.com/fwojciec/pagelabel"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// systemInstruction frames a labels prompt as the start of a document.
const systemInstruction = "You continue webpage training documents for flooring stores. " +
	"The input is a [LABELS] section describing a page. " +
	"Write only the [BODY] section text for that page, in the style of a store website, " +
	"without repeating the labels."

// Models is the subset of *genai.Models used by Generator.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Ensure Generator implements pagelabel.Generator at compile time.
var _ pagelabel.Generator = (*Generator)(nil)

// Generator implements pagelabel.Generator using Google Gemini. Each request
// asks for up to one batch of candidates and requests are rate limited.
type Generator struct {
	models  Models
	model   string
	limiter *rate.Limiter
}

// NewGenerator creates a new Generator. A nil limiter disables rate
// limiting.
func NewGenerator(models Models, model string, limiter *rate.Limiter) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{models: models, model: model, limiter: limiter}
}

// NewLimiter returns a limiter allowing rps requests per second with no
// bursting.
func NewLimiter(rps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// Generate returns cfg.Samples continuations of prompt, requesting
// cfg.BatchSize candidates at a time.
func (g *Generator) Generate(ctx context.Context, prompt string, cfg pagelabel.SamplingConfig) ([]string, error) {
	if prompt == "" {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "prompt required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, "user")}

	samples := make([]string, 0, cfg.Samples)
	for len(samples) < cfg.Samples {
		n := min(cfg.BatchSize, cfg.Samples-len(samples))

		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		result, err := g.models.GenerateContent(ctx, g.model, contents, BuildConfig(cfg.Temperature, n))
		if err != nil {
			return nil, err
		}

		texts := CandidateTexts(result)
		if len(texts) == 0 {
			return nil, pagelabel.Errorf(pagelabel.EINTERNAL, "gemini returned no candidates")
		}
		for _, text := range texts {
			if len(samples) == cfg.Samples {
				break
			}
			samples = append(samples, text)
		}
	}

	return samples, nil
}

// BuildConfig returns the GenerateContentConfig for a batch of n candidates.
func BuildConfig(temperature float32, n int) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:    &temperature,
		CandidateCount: int32(n),
	}
}

// CandidateTexts returns the text of each non-empty candidate, skipping
// thought parts.
func CandidateTexts(result *genai.GenerateContentResponse) []string {
	if result == nil {
		return nil
	}
	var texts []string
	for _, c := range result.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var text string
		for _, p := range c.Content.Parts {
			if p == nil || p.Thought {
				continue
			}
			text += p.Text
		}
		if text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
