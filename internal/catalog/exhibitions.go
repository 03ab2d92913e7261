package catalog

import "github.com/MajhiMohit/fsd-16-project/internal/models"

// Exhibitions returns a copy of every exhibition.
func (c *Catalog) Exhibitions() []models.Exhibition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Exhibition(nil), c.exhibitions...)
}

// Exhibition returns the exhibition with the given id, or ErrNotFound.
func (c *Catalog) Exhibition(id int) (models.Exhibition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.exhibitions {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Exhibition{}, ErrNotFound
}

// AddExhibition appends a new exhibition, assigning the next free id.
// When no cover image is given, the image of the first selected artwork
// is used.
func (c *Catalog) AddExhibition(e models.Exhibition) models.Exhibition {
	c.mu.Lock()
	defer c.mu.Unlock()

	max := 0
	for _, existing := range c.exhibitions {
		if existing.ID > max {
			max = existing.ID
		}
	}
	e.ID = max + 1

	if e.CoverImage == "" {
		for _, a := range c.artworks {
			if e.Contains(a.ID) {
				e.CoverImage = a.Image
				break
			}
		}
	}

	c.exhibitions = append(c.exhibitions, e)
	return e
}

// ToggleExhibitionArtwork flips the membership of an artwork in an
// exhibition's selection, preserving insertion order on add.
func (c *Catalog) ToggleExhibitionArtwork(exhibitionID, artworkID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.exhibitions {
		if c.exhibitions[i].ID != exhibitionID {
			continue
		}
		ids := c.exhibitions[i].ArtworkIDs
		for j, id := range ids {
			if id == artworkID {
				c.exhibitions[i].ArtworkIDs = append(ids[:j], ids[j+1:]...)
				return nil
			}
		}
		c.exhibitions[i].ArtworkIDs = append(ids, artworkID)
		return nil
	}
	return ErrNotFound
}

// ExhibitionArtworks resolves an exhibition's artwork ids against the
// catalog, keeping selection order.
func (c *Catalog) ExhibitionArtworks(exhibitionID int) ([]models.Artwork, error) {
	e, err := c.Exhibition(exhibitionID)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Artwork
	for _, id := range e.ArtworkIDs {
		for _, a := range c.artworks {
			if a.ID == id {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

// FeaturedExhibitionCount returns how many exhibitions carry the featured
// flag.
func (c *Catalog) FeaturedExhibitionCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, e := range c.exhibitions {
		if e.Featured {
			n++
		}
	}
	return n
}

// Annotate appends a dated curator note to an artwork. Notes accumulate in
// the order they were written.
func (c *Catalog) Annotate(artworkID int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.annotations[artworkID] = append(c.annotations[artworkID],
		models.Annotation{Text: text, Date: c.now()})
}

// Annotations returns the curator notes for an artwork, oldest first.
func (c *Catalog) Annotations(artworkID int) []models.Annotation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Annotation(nil), c.annotations[artworkID]...)
}
