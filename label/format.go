package label

import (
	"fmt"

	"github.com/fwojciec/pagelabel"
)

// TruncateKey shortens a document key for display, keeping the end which
// is more informative.
func TruncateKey(key string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		// Too short for "..." prefix, just return the start
		return key[:min(len(key), maxLen)]
	}
	if len(key) <= maxLen {
		return key
	}
	return "..." + key[len(key)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatFailures summarizes failure counts by reason, e.g. "2 load, 1 store".
func FormatFailures(counts map[pagelabel.FailureReason]int) string {
	var s string
	for _, reason := range []pagelabel.FailureReason{pagelabel.FailureLoad, pagelabel.FailureAssemble, pagelabel.FailureStore} {
		n := counts[reason]
		if n == 0 {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%d %s", n, reason)
	}
	return s
}
