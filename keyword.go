package pagelabel

import (
	"context"
	"strings"
)

// KeywordCorpus is an ordered list of domain keywords and phrases. Order
// defines match precedence. Duplicates are allowed.
type KeywordCorpus []string

// KeywordSource loads a keyword corpus.
type KeywordSource interface {
	// LoadCorpus returns the corpus. A missing source yields an empty
	// corpus rather than an error.
	LoadCorpus(ctx context.Context) (KeywordCorpus, error)
}

// MatchKeywords returns the lowercase form of each corpus keyword contained
// in body, compared case-insensitively. Each lowercase form appears once, in
// corpus order.
func MatchKeywords(corpus KeywordCorpus, body string) []string {
	matched := []string{}
	if len(corpus) == 0 {
		return matched
	}

	lowerBody := strings.ToLower(body)
	seen := make(map[string]bool, len(corpus))
	for _, keyword := range corpus {
		lower := strings.ToLower(keyword)
		if seen[lower] {
			continue
		}
		if strings.Contains(lowerBody, lower) {
			seen[lower] = true
			matched = append(matched, lower)
		}
	}
	return matched
}

// KeywordSeparator separates keywords in the serialized keywords column.
const KeywordSeparator = ":"

// JoinKeywords serializes keywords into a single field. Separators and
// backslashes inside keywords are escaped with a backslash.
func JoinKeywords(keywords []string) string {
	escaped := make([]string, len(keywords))
	for i, k := range keywords {
		k = strings.ReplaceAll(k, `\`, `\\`)
		escaped[i] = strings.ReplaceAll(k, KeywordSeparator, `\`+KeywordSeparator)
	}
	return strings.Join(escaped, KeywordSeparator)
}

// SplitKeywords parses a field produced by JoinKeywords.
func SplitKeywords(field string) []string {
	keywords := []string{}
	if field == "" {
		return keywords
	}

	var sb strings.Builder
	escaped := false
	for _, r := range field {
		switch {
		case escaped:
			sb.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case string(r) == KeywordSeparator:
			keywords = append(keywords, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	return append(keywords, sb.String())
}
