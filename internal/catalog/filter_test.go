package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(c *Catalog, f Filter, by Sort) []int {
	var out []int
	for _, a := range c.Browse(f, by) {
		out = append(out, a.ID)
	}
	return out
}

func TestBrowse_QueryMatchesTitleArtistAndTags(t *testing.T) {
	c := NewSeeded()

	// Title, case-insensitive.
	assert.Equal(t, []int{1}, ids(c, Filter{Query: "monsoon over"}, SortNewest))

	// Artist.
	got := ids(c, Filter{Query: "meera"}, SortNewest)
	assert.ElementsMatch(t, []int{1, 3, 5, 7}, got)

	// Tag.
	assert.Contains(t, ids(c, Filter{Query: "warli"}, SortNewest), 7)

	// No match.
	assert.Empty(t, ids(c, Filter{Query: "rothko"}, SortNewest))
}

func TestBrowse_CategoryAndEraFilters(t *testing.T) {
	c := NewSeeded()

	for _, a := range c.Browse(Filter{Category: "Photography"}, SortFeatured) {
		assert.Equal(t, "Photography", a.Category)
	}
	for _, a := range c.Browse(Filter{Era: "Contemporary"}, SortFeatured) {
		assert.Equal(t, "Contemporary", a.Era)
	}

	// "All" is the wildcard.
	assert.Len(t, c.Browse(Filter{Category: AnyFilter, Era: AnyFilter}, SortFeatured), c.Len())

	// Filters combine.
	got := c.Browse(Filter{Query: "meera", Category: "Folk Art"}, SortFeatured)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
}

func TestBrowse_SortFeaturedFloatsFeaturedKeepingOrder(t *testing.T) {
	c := NewSeeded()

	got := c.Browse(Filter{}, SortFeatured)
	require.Len(t, got, 8)
	assert.Equal(t, []int{1, 2, 4, 8}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	for _, a := range got[4:] {
		assert.False(t, a.Featured)
	}
}

func TestBrowse_SortNewest(t *testing.T) {
	c := NewSeeded()

	got := c.Browse(Filter{}, SortNewest)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Year, got[i].Year)
	}
	assert.Equal(t, 2023, got[0].Year)
	assert.Equal(t, 1760, got[len(got)-1].Year)
}

func TestBrowse_SortTopRated(t *testing.T) {
	c := NewSeeded()

	got := c.Browse(Filter{}, SortTopRated)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestCategoriesAndEras_DistinctInCatalogOrder(t *testing.T) {
	c := NewSeeded()

	assert.Equal(t, []string{"Painting", "Sculpture", "Folk Art", "Photography"}, c.Categories())
	assert.Equal(t, []string{"Contemporary", "Modern", "Mughal"}, c.Eras())
}
