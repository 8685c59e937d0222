package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelabel"
)

// Ensure LoggingGenerator implements pagelabel.Generator.
var _ pagelabel.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   pagelabel.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next pagelabel.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string, cfg pagelabel.SamplingConfig) (samples []string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"samples", len(samples),
			"temperature", cfg.Temperature,
			"batch", cfg.BatchSize,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt, cfg)
}
