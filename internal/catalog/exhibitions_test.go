package catalog

import (
	"testing"
	"time"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExhibition_DefaultsCoverFromFirstArtwork(t *testing.T) {
	c := NewSeeded()

	ex := c.AddExhibition(models.Exhibition{
		Title:      "River Light",
		Curator:    "Isabelle Laurent",
		ArtworkIDs: []int{8, 5},
	})
	assert.Equal(t, 4, ex.ID)

	art, err := c.Artwork(8)
	require.NoError(t, err)
	assert.Equal(t, art.Image, ex.CoverImage)

	// An explicit cover is kept.
	ex2 := c.AddExhibition(models.Exhibition{Title: "X", CoverImage: "https://example.com/c.jpg", ArtworkIDs: []int{1}})
	assert.Equal(t, "https://example.com/c.jpg", ex2.CoverImage)
}

func TestToggleExhibitionArtwork_Involution(t *testing.T) {
	c := NewSeeded()

	before, err := c.Exhibition(1)
	require.NoError(t, err)

	require.NoError(t, c.ToggleExhibitionArtwork(1, 2))
	mid, err := c.Exhibition(1)
	require.NoError(t, err)
	assert.True(t, mid.Contains(2))
	assert.Equal(t, append(append([]int(nil), before.ArtworkIDs...), 2), mid.ArtworkIDs)

	require.NoError(t, c.ToggleExhibitionArtwork(1, 2))
	after, err := c.Exhibition(1)
	require.NoError(t, err)
	assert.Equal(t, before.ArtworkIDs, after.ArtworkIDs)

	assert.ErrorIs(t, c.ToggleExhibitionArtwork(99, 1), ErrNotFound)
}

func TestExhibitionArtworks_ResolvesInSelectionOrder(t *testing.T) {
	c := NewSeeded()

	arts, err := c.ExhibitionArtworks(1)
	require.NoError(t, err)
	require.Len(t, arts, 2)
	assert.Equal(t, 4, arts[0].ID)
	assert.Equal(t, 6, arts[1].ID)
}

func TestAnnotations_AccumulateWithDates(t *testing.T) {
	c := NewSeeded()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return day }

	assert.Empty(t, c.Annotations(4))

	c.Annotate(4, "Hang at eye level; the gold needs raking light.")
	day = day.AddDate(0, 0, 3)
	c.Annotate(4, "Moved to the Gold Hall.")

	notes := c.Annotations(4)
	require.Len(t, notes, 2)
	assert.Equal(t, "Hang at eye level; the gold needs raking light.", notes[0].Text)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), notes[0].Date)
	assert.Equal(t, "Moved to the Gold Hall.", notes[1].Text)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), notes[1].Date)

	assert.Empty(t, c.Annotations(1), "notes stay per-artwork")
}

func TestFeaturedExhibitionCount(t *testing.T) {
	c := NewSeeded()
	assert.Equal(t, 2, c.FeaturedExhibitionCount())
}
