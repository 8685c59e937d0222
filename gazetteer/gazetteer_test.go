package gazetteer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/pagelabel"
	"github.com/fwojciec/pagelabel/gazetteer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefault(t *testing.T) *gazetteer.Gazetteer {
	t.Helper()
	g, err := gazetteer.NewDefault()
	require.NoError(t, err)
	return g
}

func TestGazetteer_Locate(t *testing.T) {
	t.Parallel()

	g := newDefault(t)

	t.Run("finds cities and regions in text order", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "Visit our showroom in Nashua, New Hampshire or our store in Toronto, Ontario.")

		require.NoError(t, err)
		assert.Equal(t, []pagelabel.CountryPlaces{
			{Country: "United States", Names: []string{"New Hampshire"}},
			{Country: "Canada", Names: []string{"Ontario"}},
		}, places.Regions)
		assert.Equal(t, []pagelabel.CountryPlaces{
			{Country: "United States", Names: []string{"Nashua"}},
			{Country: "Canada", Names: []string{"Toronto"}},
		}, places.Cities)
	})

	t.Run("prefers the longest name", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "Serving New York City and Salt Lake City.")

		require.NoError(t, err)
		assert.Empty(t, places.Regions)
		assert.Equal(t, []pagelabel.CountryPlaces{
			{Country: "United States", Names: []string{"New York City", "Salt Lake City"}},
		}, places.Cities)
	})

	t.Run("ambiguous names yield every country", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "Inspired by Paris.")

		require.NoError(t, err)
		require.Len(t, places.Cities, 2)
		countries := []string{places.Cities[0].Country, places.Cities[1].Country}
		assert.ElementsMatch(t, []string{"United States", "France"}, countries)
	})

	t.Run("matches abbreviated names", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "Now open in St. Louis!")

		require.NoError(t, err)
		assert.Equal(t, []pagelabel.CountryPlaces{
			{Country: "United States", Names: []string{"St. Louis"}},
		}, places.Cities)
	})

	t.Run("ignores lowercase words", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "we ship to texas and toronto")

		require.NoError(t, err)
		assert.True(t, places.Empty())
	})

	t.Run("names do not span punctuation", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "New, York")

		require.NoError(t, err)
		assert.True(t, places.Empty())
	})

	t.Run("deduplicates repeated mentions", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "Keene. Keene. Keene.")

		require.NoError(t, err)
		assert.Equal(t, []pagelabel.CountryPlaces{
			{Country: "United States", Names: []string{"Keene"}},
		}, places.Cities)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		places, err := g.Locate(context.Background(), "")

		require.NoError(t, err)
		require.NotNil(t, places)
		assert.True(t, places.Empty())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.Locate(ctx, "Nashua")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGazetteer_FormatsWithLocationExtractor(t *testing.T) {
	t.Parallel()

	e := pagelabel.NewLocationExtractor(newDefault(t))

	got, err := e.ExtractLocation(context.Background(),
		"C123-45 Example Store (Nashua)",
		"Flooring in Ohio, Paris and Ottawa.")

	require.NoError(t, err)
	assert.Equal(t, "Nashua Ohio United States,Paris United States,Ottawa Canada", got)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("custom dictionary", func(t *testing.T) {
		t.Parallel()

		g, err := gazetteer.New(strings.NewReader("name,kind,country\nSpringfield,city,United States\nSpringfield,city,United States\n"))
		require.NoError(t, err)

		places, err := g.Locate(context.Background(), "Springfield")

		require.NoError(t, err)
		assert.Equal(t, []pagelabel.CountryPlaces{
			{Country: "United States", Names: []string{"Springfield"}},
		}, places.Cities)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		t.Parallel()

		_, err := gazetteer.New(strings.NewReader("name,kind,country\nFrance,country,France\n"))

		assert.Equal(t, pagelabel.EINVALID, pagelabel.ErrorCode(err))
	})

	t.Run("rejects unexpected header", func(t *testing.T) {
		t.Parallel()

		_, err := gazetteer.New(strings.NewReader("city,state\nNashua,NH\n"))

		assert.Equal(t, pagelabel.EINVALID, pagelabel.ErrorCode(err))
	})
}

func TestGazetteer_Len(t *testing.T) {
	t.Parallel()

	g := gazetteer.NewFromPlaces([]gazetteer.Place{
		{Name: "New York", Kind: gazetteer.KindCity, Country: "United States"},
		{Name: "New York", Kind: gazetteer.KindRegion, Country: "United States"},
		{Name: "New Hampshire", Kind: gazetteer.KindRegion, Country: "United States"},
		{Name: "Ottawa", Kind: gazetteer.KindCity, Country: "Canada"},
	})

	assert.Equal(t, 3, g.Len())
	assert.InDelta(t, 2, float64(g.FirstWords()), 1)
}
