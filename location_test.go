package pagelabel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gazetteerReturning(places *pagelabel.Places) *mock.Gazetteer {
	return &mock.Gazetteer{
		LocateFn: func(context.Context, string) (*pagelabel.Places, error) {
			return places, nil
		},
	}
}

func TestTitleLocationHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
		ok    bool
	}{
		{name: "parenthesized place", title: "C123-45 Example Store (Nashua)", want: "Nashua", ok: true},
		{name: "multi word place", title: "C1 Smith Carpet One (Grand Rapids) Tile", want: "Grand Rapids", ok: true},
		{name: "first group wins", title: "C1 Store (Nashua) (Concord)", want: "Nashua", ok: true},
		{name: "spaces only", title: "C1 Store ( )", want: "", ok: true},
		{name: "empty parentheses", title: "C1 Store ()", want: ""},
		{name: "punctuation is not a word character", title: "C1 Store (St. Louis)", want: ""},
		{name: "no parentheses", title: "C1 Smith Carpet One", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint, ok := pagelabel.TitleLocationHint(tt.title)

			assert.Equal(t, tt.want, hint)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFormatLocation(t *testing.T) {
	t.Parallel()

	allowed := pagelabel.DefaultAllowedCountries()

	t.Run("hint alone keeps trailing space", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Nashua ", pagelabel.FormatLocation("Nashua", true, &pagelabel.Places{}, allowed))
	})

	t.Run("matched blank hint still adds a space", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, " ", pagelabel.FormatLocation("", true, nil, allowed))
	})

	t.Run("renders regions before cities", func(t *testing.T) {
		t.Parallel()

		places := &pagelabel.Places{}
		places.AddCity(pagelabel.CountryUnitedStates, "Nashua")
		places.AddCity(pagelabel.CountryCanada, "Toronto")
		places.AddRegion(pagelabel.CountryUnitedStates, "New Hampshire")

		got := pagelabel.FormatLocation("", false, places, allowed)

		assert.Equal(t, "New Hampshire United States,Nashua United States,Toronto Canada", got)
	})

	t.Run("drops countries outside the allow-list", func(t *testing.T) {
		t.Parallel()

		places := &pagelabel.Places{}
		places.AddCity("France", "Paris")
		places.AddRegion("France", "Normandy")
		places.AddCity(pagelabel.CountryUnitedStates, "Nashua")

		got := pagelabel.FormatLocation("", false, places, allowed)

		assert.Equal(t, "Nashua United States", got)
		assert.NotContains(t, got, "France")
		assert.NotContains(t, got, "Paris")
	})

	t.Run("does not deduplicate hint and body places", func(t *testing.T) {
		t.Parallel()

		places := &pagelabel.Places{}
		places.AddCity(pagelabel.CountryUnitedStates, "Nashua")

		got := pagelabel.FormatLocation("Nashua", true, places, allowed)

		assert.Equal(t, "Nashua Nashua United States", got)
	})

	t.Run("nil places", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagelabel.FormatLocation("", false, nil, allowed))
	})
}

func TestPlaces_Add(t *testing.T) {
	t.Parallel()

	places := &pagelabel.Places{}
	places.AddCity(pagelabel.CountryUnitedStates, "Nashua")
	places.AddCity(pagelabel.CountryCanada, "Ottawa")
	places.AddCity(pagelabel.CountryUnitedStates, "Concord")
	places.AddCity(pagelabel.CountryUnitedStates, "Nashua")

	assert.Equal(t, []pagelabel.CountryPlaces{
		{Country: pagelabel.CountryUnitedStates, Names: []string{"Nashua", "Concord"}},
		{Country: pagelabel.CountryCanada, Names: []string{"Ottawa"}},
	}, places.Cities)
	assert.Empty(t, places.Regions)
	assert.False(t, places.Empty())
	assert.True(t, (&pagelabel.Places{}).Empty())
}

func TestLocationExtractor_ExtractLocation(t *testing.T) {
	t.Parallel()

	t.Run("title hint with no body places", func(t *testing.T) {
		t.Parallel()

		e := pagelabel.NewLocationExtractor(gazetteerReturning(&pagelabel.Places{}))

		got, err := e.ExtractLocation(context.Background(), "C123-45 Example Store (Nashua)", "We sell carpet.")

		require.NoError(t, err)
		assert.Equal(t, "Nashua ", got)
	})

	t.Run("body places under allowed countries", func(t *testing.T) {
		t.Parallel()

		places := &pagelabel.Places{}
		places.AddCity(pagelabel.CountryUnitedStates, "Nashua")
		places.AddCity("France", "Paris")

		var gotText string
		g := &mock.Gazetteer{
			LocateFn: func(_ context.Context, text string) (*pagelabel.Places, error) {
				gotText = text
				return places, nil
			},
		}
		e := pagelabel.NewLocationExtractor(g)

		got, err := e.ExtractLocation(context.Background(), "C1 Example Store ()", "Visit us in Nashua.")

		require.NoError(t, err)
		assert.Equal(t, "Visit us in Nashua.", gotText)
		assert.Contains(t, got, "Nashua United States")
		assert.NotContains(t, got, "France")
	})

	t.Run("propagates gazetteer errors", func(t *testing.T) {
		t.Parallel()

		g := &mock.Gazetteer{
			LocateFn: func(context.Context, string) (*pagelabel.Places, error) {
				return nil, errors.New("gazetteer unavailable")
			},
		}
		e := pagelabel.NewLocationExtractor(g)

		_, err := e.ExtractLocation(context.Background(), "C1 Store", "body")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "gazetteer unavailable")
	})

	t.Run("blank parenthetical yields a single space", func(t *testing.T) {
		t.Parallel()

		e := pagelabel.NewLocationExtractor(gazetteerReturning(&pagelabel.Places{}))

		got, err := e.ExtractLocation(context.Background(), "C1 Store ( )", "body")

		require.NoError(t, err)
		assert.Equal(t, " ", got)
	})

	t.Run("works without gazetteer", func(t *testing.T) {
		t.Parallel()

		e := pagelabel.NewLocationExtractor(nil)

		got, err := e.ExtractLocation(context.Background(), "C1 Store (Keene)", "body")

		require.NoError(t, err)
		assert.Equal(t, "Keene ", got)
	})
}
