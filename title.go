package pagelabel

import "strings"

// Rule is a literal matched against a title. Lower priority wins when
// several rules occur in the same title.
type Rule struct {
	Literal  string
	Priority int
}

// RuleSet is an ordered rule table evaluated with first-match-wins
// semantics.
type RuleSet []Rule

// NewRuleSet builds a RuleSet whose priorities follow the order of the
// given literals. More specific literals must be listed before the shorter
// literals they contain.
func NewRuleSet(literals ...string) RuleSet {
	rs := make(RuleSet, len(literals))
	for i, lit := range literals {
		rs[i] = Rule{Literal: lit, Priority: i}
	}
	return rs
}

// Match returns the winning rule contained in s together with the index of
// its leftmost occurrence. The winner is the rule with the lowest priority
// among all rules that occur anywhere in s, not the rule that occurs
// earliest in s. Ties on priority keep the rule declared first.
func (rs RuleSet) Match(s string) (rule Rule, index int, ok bool) {
	index = -1
	for _, r := range rs {
		if r.Literal == "" {
			continue
		}
		i := strings.Index(s, r.Literal)
		if i < 0 {
			continue
		}
		if !ok || r.Priority < rule.Priority {
			rule, index, ok = r, i, true
		}
	}
	return rule, index, ok
}

// TitleRules holds the page modifier and store suffix tables used to
// decompose titles.
type TitleRules struct {
	Modifiers RuleSet
	Suffixes  RuleSet
}

// DefaultTitleRules returns the modifier and suffix tables for the flooring
// store page exports.
func DefaultTitleRules() TitleRules {
	return TitleRules{
		Modifiers: NewRuleSet(
			"MULTI-MAIN",
			"MULTI-ADDON",
			"MULTI-LOC",
			"MULTI SINGLE",
			"MULTI",
		),
		Suffixes: NewRuleSet(
			"Carpet One Floor & Home - Asheville",
			"Carpet One Floor & Home of Billings",
			"Carpet One Floor & Home",
			"Carpet One Belleville",
			"Rochester Flooring",
			"Nice Carpets",
			"Fox Floors",
			"Northeast Flooring and Kitchens",
			"Carpet & Flooring",
			"Carpet One & Paint",
			"Flooring & Kitchens",
			"Carpet One",
			"Carpet",
		),
	}
}

// TitleParts is the result of decomposing a title.
type TitleParts struct {
	StoreName    string
	PageTemplate string

	// Modifier is the page modifier found in the title, if any.
	Modifier string

	// Suffix is the store suffix the title was split on. Empty when no
	// suffix matched, in which case StoreName holds the whole title.
	Suffix string
}

// CleanTitle removes the leading serial number token from a raw title and
// normalizes the remaining whitespace to single spaces.
func CleanTitle(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) <= 1 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

// Decompose splits a raw title into store name and page template.
//
// The serial number is dropped, the first page modifier found is removed
// from the title and becomes the template prefix, then the title is split
// around the winning store suffix: the text before it plus the suffix is
// the store name and the text after it is appended to the template.
//
// When no suffix matches, the whole remaining title is the store name and
// the template is the modifier alone.
func (tr TitleRules) Decompose(raw string) TitleParts {
	title := CleanTitle(raw)

	var parts TitleParts
	if rule, _, ok := tr.Modifiers.Match(title); ok {
		parts.Modifier = rule.Literal
		title = strings.ReplaceAll(title, rule.Literal, "")
	}

	rule, index, ok := tr.Suffixes.Match(title)
	if !ok {
		parts.StoreName = strings.TrimSpace(title)
		parts.PageTemplate = strings.TrimSpace(parts.Modifier)
		return parts
	}

	parts.Suffix = rule.Literal
	parts.StoreName = strings.TrimSpace(strings.TrimSpace(title[:index]) + " " + rule.Literal)
	parts.PageTemplate = strings.TrimSpace(parts.Modifier + title[index+len(rule.Literal):])
	return parts
}

// DecomposeTitle splits a raw title using DefaultTitleRules.
func DecomposeTitle(raw string) (storeName, pageTemplate string) {
	parts := DefaultTitleRules().Decompose(raw)
	return parts.StoreName, parts.PageTemplate
}
