// Package label orchestrates labelling runs over a document source.
// It coordinates loading, metadata assembly and optional persistence of
// every document, concurrently and in a stable order.
package label

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pagelabel"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents processed at once when
// none is configured.
const DefaultConcurrency = 8

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Key       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress. It is never called
// concurrently.
type ProgressFunc func(event ProgressEvent)

// Labeler labels every document of a source.
type Labeler struct {
	Documents pagelabel.DocumentSource
	Assembler *pagelabel.Assembler

	// Labels, if set, receives every successfully labelled document.
	Labels pagelabel.LabelService

	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Run labels all documents and returns their outcomes in key order.
// Failures of individual documents are recorded in the report and never
// abort the run; listing failures and context cancellation do.
func (l *Labeler) Run(ctx context.Context, progress ProgressFunc) (*pagelabel.BatchReport, error) {
	keys, err := l.Documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	outcomes, err := forEach(ctx, keys, l.Concurrency, progress, l.label)
	if err != nil {
		return nil, err
	}
	return &pagelabel.BatchReport{Outcomes: outcomes}, nil
}

// label processes a single document.
func (l *Labeler) label(ctx context.Context, key string) pagelabel.Outcome {
	outcome := pagelabel.Outcome{Key: key}

	doc, err := LoadWithRetry(ctx, key, l.Documents.LoadDocument, l.Logger, l.retryDelays())
	if err != nil {
		outcome.Reason, outcome.Err = pagelabel.FailureLoad, err
		return outcome
	}
	outcome.FileName = doc.FileName

	m, err := l.Assembler.Assemble(ctx, doc)
	if err != nil {
		outcome.Reason, outcome.Err = pagelabel.FailureAssemble, err
		return outcome
	}

	if l.Labels != nil {
		if err := l.Labels.CreateLabel(ctx, &pagelabel.Label{Metadata: *m, Body: doc.Body}); err != nil {
			outcome.Reason, outcome.Err = pagelabel.FailureStore, err
			return outcome
		}
	}

	outcome.Metadata = m
	outcome.Body = doc.Body
	return outcome
}

func (l *Labeler) retryDelays() []time.Duration {
	if l.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return l.RetryDelays
}

// Flattener converts every document of a source into flattened text.
type Flattener struct {
	Documents   pagelabel.DocumentSource
	Writer      pagelabel.DocumentWriter
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc
}

// Run flattens all documents and returns their outcomes in key order.
func (f *Flattener) Run(ctx context.Context, progress ProgressFunc) (*pagelabel.BatchReport, error) {
	keys, err := f.Documents.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	delays := f.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	outcomes, err := forEach(ctx, keys, f.Concurrency, progress, func(ctx context.Context, key string) pagelabel.Outcome {
		outcome := pagelabel.Outcome{Key: key}

		doc, err := LoadWithRetry(ctx, key, f.Documents.LoadDocument, f.Logger, delays)
		if err != nil {
			outcome.Reason, outcome.Err = pagelabel.FailureLoad, err
			return outcome
		}
		outcome.FileName = doc.FileName

		if err := f.Writer.WriteDocument(ctx, doc); err != nil {
			outcome.Reason, outcome.Err = pagelabel.FailureStore, err
			return outcome
		}

		outcome.Body = doc.Body
		return outcome
	})
	if err != nil {
		return nil, err
	}
	return &pagelabel.BatchReport{Outcomes: outcomes}, nil
}

// result pairs an outcome with its key position.
type result struct {
	position int
	outcome  pagelabel.Outcome
}

// forEach runs fn for every key with bounded concurrency and returns the
// outcomes in key order. Progress events are emitted from the calling
// goroutine.
func forEach(ctx context.Context, keys []string, concurrency int, progress ProgressFunc, fn func(ctx context.Context, key string) pagelabel.Outcome) ([]pagelabel.Outcome, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	total := len(keys)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan result, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, key := range keys {
			g.Go(func() error {
				resultCh <- result{position: i, outcome: fn(gctx, key)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	outcomes := make([]pagelabel.Outcome, total)
	completed := 0
	for r := range resultCh {
		completed++
		outcomes[r.position] = r.outcome

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Key:       r.outcome.Key,
		}
		if r.outcome.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.outcome.Err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return outcomes, nil
}
