// Package gazetteer recognises place names in text using a dictionary of
// known regions and cities.
package gazetteer

import (
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/bloom"
)

// Place kinds in the dictionary.
const (
	KindRegion = "region"
	KindCity   = "city"
)

// falsePositiveRate sizes the first-word prefilter.
const falsePositiveRate = 0.01

//go:embed places.csv
var defaultPlaces string

// Ensure Gazetteer implements pagelabel.Gazetteer at compile time.
var _ pagelabel.Gazetteer = (*Gazetteer)(nil)

// Place is a dictionary entry.
type Place struct {
	Name    string
	Kind    string
	Country string
}

// Gazetteer matches capitalised word sequences against a place dictionary.
// The longest known name starting at a word wins. A name shared by several
// places, such as Paris, yields every one of them. It is safe for
// concurrent use once constructed.
type Gazetteer struct {
	places   map[string][]Place
	first    *bloom.WordFilter
	maxWords int
}

// New builds a Gazetteer from a CSV dictionary with a name,kind,country
// header. Returns EINVALID for malformed input or unknown kinds.
func New(r io.Reader) (*Gazetteer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "gazetteer: read header: %v", err)
	}
	if header[0] != "name" || header[1] != "kind" || header[2] != "country" {
		return nil, pagelabel.Errorf(pagelabel.EINVALID, "gazetteer: unexpected header %v", header)
	}

	var places []Place
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, pagelabel.Errorf(pagelabel.EINVALID, "gazetteer: %v", err)
		}
		p := Place{
			Name:    strings.TrimSpace(record[0]),
			Kind:    strings.TrimSpace(record[1]),
			Country: strings.TrimSpace(record[2]),
		}
		if p.Kind != KindRegion && p.Kind != KindCity {
			return nil, pagelabel.Errorf(pagelabel.EINVALID, "gazetteer: unknown kind %q for %q", p.Kind, p.Name)
		}
		if p.Name == "" || p.Country == "" {
			continue
		}
		places = append(places, p)
	}

	return NewFromPlaces(places), nil
}

// NewDefault builds a Gazetteer from the embedded dictionary of US and
// Canadian regions and cities plus a selection of places elsewhere.
func NewDefault() (*Gazetteer, error) {
	return New(strings.NewReader(defaultPlaces))
}

// NewFromPlaces builds a Gazetteer from dictionary entries.
func NewFromPlaces(places []Place) *Gazetteer {
	g := &Gazetteer{
		places: make(map[string][]Place),
		first:  bloom.NewWordFilter(uint(len(places)), falsePositiveRate),
	}
	for _, p := range places {
		words := wordRe.FindAllString(p.Name, -1)
		if len(words) == 0 {
			continue
		}
		key := strings.ToLower(strings.Join(words, " "))
		if !contains(g.places[key], p) {
			g.places[key] = append(g.places[key], p)
		}
		g.first.Add(words[0])
		g.maxWords = max(g.maxWords, len(words))
	}
	return g
}

// Len returns the number of distinct names in the dictionary.
func (g *Gazetteer) Len() int {
	return len(g.places)
}

// FirstWords returns the approximate number of distinct first words in the
// prefilter.
func (g *Gazetteer) FirstWords() uint {
	return g.first.EstimatedCount()
}

func contains(places []Place, p Place) bool {
	for _, q := range places {
		if q == p {
			return true
		}
	}
	return false
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’\-.][\p{L}\p{N}]+)*`)

type word struct {
	text       string
	start, end int
}

// Locate returns the regions and cities named in text, in text order.
func (g *Gazetteer) Locate(ctx context.Context, text string) (*pagelabel.Places, error) {
	places := &pagelabel.Places{}

	idx := wordRe.FindAllStringIndex(text, -1)
	words := make([]word, len(idx))
	for i, loc := range idx {
		words[i] = word{text: text[loc[0]:loc[1]], start: loc[0], end: loc[1]}
	}

	for i, steps := 0, 0; i < len(words); steps++ {
		if steps%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		n := g.match(text, words[i:])
		if n == 0 {
			i++
			continue
		}
		for _, p := range g.places[key(words[i:i+n])] {
			if p.Kind == KindRegion {
				places.AddRegion(p.Country, p.Name)
			} else {
				places.AddCity(p.Country, p.Name)
			}
		}
		i += n
	}

	return places, nil
}

// match returns the number of words of the longest place name starting at
// words[0], or 0.
func (g *Gazetteer) match(text string, words []word) int {
	if !capitalised(words[0].text) || !g.first.MayContain(words[0].text) {
		return 0
	}
	limit := min(g.maxWords, len(words))
	// Names only span words separated by whitespace, allowing the period
	// of an abbreviation such as "St. Louis".
	for n := 1; n < limit; n++ {
		gap := strings.TrimPrefix(text[words[n-1].end:words[n].start], ".")
		if strings.TrimSpace(gap) != "" {
			limit = n
			break
		}
	}
	for n := limit; n > 0; n-- {
		if _, ok := g.places[key(words[:n])]; ok {
			return n
		}
	}
	return 0
}

func key(words []word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = strings.ToLower(w.text)
	}
	return strings.Join(parts, " ")
}

func capitalised(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
