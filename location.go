package pagelabel

import (
	"context"
	"regexp"
	"strings"
)

// Country names used by the default allow-list.
const (
	CountryCanada       = "Canada"
	CountryUnitedStates = "United States"
)

// CountryPlaces groups place names recognised under a single country.
type CountryPlaces struct {
	Country string
	Names   []string
}

// Places holds places recognised in a text, grouped by country and by place
// type. Countries appear in the order they were first encountered.
type Places struct {
	Regions []CountryPlaces
	Cities  []CountryPlaces
}

// AddRegion records a region name under country.
func (p *Places) AddRegion(country, name string) {
	p.Regions = addPlace(p.Regions, country, name)
}

// AddCity records a city name under country.
func (p *Places) AddCity(country, name string) {
	p.Cities = addPlace(p.Cities, country, name)
}

// Empty reports whether no places were recognised.
func (p *Places) Empty() bool {
	return p == nil || (len(p.Regions) == 0 && len(p.Cities) == 0)
}

func addPlace(groups []CountryPlaces, country, name string) []CountryPlaces {
	for i := range groups {
		if groups[i].Country != country {
			continue
		}
		for _, n := range groups[i].Names {
			if n == name {
				return groups
			}
		}
		groups[i].Names = append(groups[i].Names, name)
		return groups
	}
	return append(groups, CountryPlaces{Country: country, Names: []string{name}})
}

// Gazetteer recognises geographic entities in free text.
type Gazetteer interface {
	// Locate returns the regions and cities mentioned in text grouped by
	// country. Returns an empty Places (not nil) when nothing is found.
	Locate(ctx context.Context, text string) (*Places, error)
}

// CountrySet is an immutable set of country names.
type CountrySet map[string]struct{}

// NewCountrySet returns a set containing the given countries.
func NewCountrySet(countries ...string) CountrySet {
	s := make(CountrySet, len(countries))
	for _, c := range countries {
		s[c] = struct{}{}
	}
	return s
}

// DefaultAllowedCountries returns the countries whose places are kept.
func DefaultAllowedCountries() CountrySet {
	return NewCountrySet(CountryCanada, CountryUnitedStates)
}

// Contains reports whether country is in the set.
func (s CountrySet) Contains(country string) bool {
	_, ok := s[country]
	return ok
}

var titleLocationRe = regexp.MustCompile(`\([\p{L}\p{N}_ ]+\)`)

// TitleLocationHint returns the trimmed content of the first parenthesized
// group of word characters and spaces in title. ok reports whether a group
// matched; a group of spaces alone yields "" and true.
func TitleLocationHint(title string) (hint string, ok bool) {
	m := titleLocationRe.FindString(title)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(m, "()")), true
}

// FormatLocation renders a location string from a title hint and the places
// found in the body. A matched hint is followed by a single space, even when
// it is empty. Each
// place under an allowed country is rendered as "<place> <country>", regions
// before cities, and the entries are joined with commas. Places of other
// countries are dropped. No deduplication is performed across the hint,
// regions and cities.
func FormatLocation(hint string, matched bool, places *Places, allowed CountrySet) string {
	var location string
	if matched {
		location = hint + " "
	}
	if places.Empty() {
		return location
	}

	var entries []string
	for _, groups := range [][]CountryPlaces{places.Regions, places.Cities} {
		for _, g := range groups {
			if !allowed.Contains(g.Country) {
				continue
			}
			for _, name := range g.Names {
				entries = append(entries, name+" "+g.Country)
			}
		}
	}

	return location + strings.Join(entries, ",")
}

// LocationExtractor infers a store location from a title and body.
type LocationExtractor struct {
	Gazetteer Gazetteer
	Allowed   CountrySet
}

// NewLocationExtractor returns an extractor using the default country
// allow-list.
func NewLocationExtractor(g Gazetteer) *LocationExtractor {
	return &LocationExtractor{Gazetteer: g, Allowed: DefaultAllowedCountries()}
}

// ExtractLocation returns the title hint followed by the allowed places
// recognised in body.
func (e *LocationExtractor) ExtractLocation(ctx context.Context, title, body string) (string, error) {
	hint, matched := TitleLocationHint(title)

	var places *Places
	if e.Gazetteer != nil {
		var err error
		places, err = e.Gazetteer.Locate(ctx, body)
		if err != nil {
			return "", err
		}
	}

	return FormatLocation(hint, matched, places, e.Allowed), nil
}
