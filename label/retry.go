package label

import (
	"context"
	"time"

	"github.com/fwojciec/pagelabel"
)

// LoadFunc is the signature for a document load function.
type LoadFunc func(ctx context.Context, key string) (*pagelabel.Document, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for load retries: 100ms,
// 200ms, 400ms.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}
}

// retryable reports whether a load error may succeed on another attempt.
// Missing and undecodable documents fail the same way every time.
func retryable(err error) bool {
	switch pagelabel.ErrorCode(err) {
	case pagelabel.ENOTFOUND, pagelabel.EINVALID:
		return false
	}
	return true
}

// LoadWithRetry attempts to load a document, retrying transient failures
// after each of the given delays. The logger function, if provided, is
// called for each retry attempt.
func LoadWithRetry(ctx context.Context, key string, load LoadFunc, logger LogFunc, delays []time.Duration) (*pagelabel.Document, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := load(ctx, key)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		// Check context before sleeping
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", key, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
