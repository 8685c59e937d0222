// Package slog provides logging decorators for pagelabel services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelabel"
)

// Ensure LoggingGazetteer implements pagelabel.Gazetteer.
var _ pagelabel.Gazetteer = (*LoggingGazetteer)(nil)

// LoggingGazetteer wraps a Gazetteer with debug logging.
type LoggingGazetteer struct {
	next   pagelabel.Gazetteer
	logger *slog.Logger
}

// NewLoggingGazetteer creates a new LoggingGazetteer.
func NewLoggingGazetteer(next pagelabel.Gazetteer, logger *slog.Logger) *LoggingGazetteer {
	return &LoggingGazetteer{next: next, logger: logger}
}

// Locate delegates to the wrapped gazetteer and logs the operation.
func (g *LoggingGazetteer) Locate(ctx context.Context, text string) (places *pagelabel.Places, err error) {
	defer func(begin time.Time) {
		var regions, cities int
		if !places.Empty() {
			regions, cities = count(places.Regions), count(places.Cities)
		}
		g.logger.Debug("locate",
			"bytes", len(text),
			"regions", regions,
			"cities", cities,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Locate(ctx, text)
}

func count(groups []pagelabel.CountryPlaces) int {
	n := 0
	for _, g := range groups {
		n += len(g.Names)
	}
	return n
}
