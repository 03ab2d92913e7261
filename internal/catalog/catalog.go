// Package catalog owns the gallery's collections: artworks, exhibitions,
// virtual-tour rooms, and reviews. Everything is in memory, seeded from the
// mock dataset; mutation happens only through the dashboard operations.
package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// ErrNotFound indicates the requested catalog record does not exist.
var ErrNotFound = errors.New("not found")

// Catalog is the in-memory collection store.
type Catalog struct {
	mu          sync.RWMutex
	artworks    []models.Artwork
	exhibitions []models.Exhibition
	rooms       []models.Room
	reviews     []models.Review
	annotations map[int][]models.Annotation

	now func() time.Time // test seam
}

// New builds a catalog over the given collections.
func New(artworks []models.Artwork, exhibitions []models.Exhibition, rooms []models.Room, reviews []models.Review) *Catalog {
	c := &Catalog{
		artworks:    append([]models.Artwork(nil), artworks...),
		exhibitions: append([]models.Exhibition(nil), exhibitions...),
		rooms:       append([]models.Room(nil), rooms...),
		reviews:     append([]models.Review(nil), reviews...),
		annotations: make(map[int][]models.Annotation),
		now:         time.Now,
	}
	return c
}

// NewSeeded builds a catalog over the mock dataset.
func NewSeeded() *Catalog {
	return New(SeedArtworks(), SeedExhibitions(), SeedRooms(), SeedReviews())
}

// Artworks returns a copy of every artwork, in catalog order.
func (c *Catalog) Artworks() []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Artwork(nil), c.artworks...)
}

// Artwork returns the artwork with the given id, or ErrNotFound.
func (c *Catalog) Artwork(id int) (models.Artwork, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.artworks {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Artwork{}, ErrNotFound
}

// Related returns up to n artworks sharing a category with the given
// artwork, excluding the artwork itself.
func (c *Catalog) Related(id, n int) []models.Artwork {
	base, err := c.Artwork(id)
	if err != nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Artwork
	for _, a := range c.artworks {
		if a.ID != id && a.Category == base.Category {
			out = append(out, a)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// Reviews returns the reviews attached to an artwork, in dataset order.
func (c *Catalog) Reviews(artworkID int) []models.Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Review
	for _, r := range c.reviews {
		if r.ArtworkID == artworkID {
			out = append(out, r)
		}
	}
	return out
}

// AddReview prepends a review for an artwork, assigning the next free id
// and the current date. Newest reviews come first on the detail page.
// Fails with ErrNotFound when the artwork does not exist.
func (c *Catalog) AddReview(artworkID int, author string, rating int, comment string) (models.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for _, a := range c.artworks {
		if a.ID == artworkID {
			found = true
			break
		}
	}
	if !found {
		return models.Review{}, ErrNotFound
	}

	max := 0
	for _, r := range c.reviews {
		if r.ID > max {
			max = r.ID
		}
	}

	r := models.Review{
		ID:        max + 1,
		ArtworkID: artworkID,
		Author:    author,
		Rating:    rating,
		Comment:   comment,
		Date:      c.now(),
	}
	c.reviews = append([]models.Review{r}, c.reviews...)
	return r, nil
}

// ArtworksByArtist returns every artwork stamped with the given artist id.
func (c *Catalog) ArtworksByArtist(artistID int) []models.Artwork {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Artwork
	for _, a := range c.artworks {
		if a.ArtistID == artistID {
			out = append(out, a)
		}
	}
	return out
}

// AddArtwork appends a new artwork, assigning the next free id and clearing
// the Sold flag. Returns the stored record.
func (c *Catalog) AddArtwork(a models.Artwork) models.Artwork {
	c.mu.Lock()
	defer c.mu.Unlock()

	a.ID = c.nextArtworkID()
	a.Sold = false
	c.artworks = append(c.artworks, a)
	return a
}

// UpdateArtwork replaces the stored artwork with the same id.
func (c *Catalog) UpdateArtwork(a models.Artwork) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.artworks {
		if c.artworks[i].ID == a.ID {
			c.artworks[i] = a
			return nil
		}
	}
	return ErrNotFound
}

// DeleteArtwork removes the artwork with the given id.
func (c *Catalog) DeleteArtwork(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.artworks {
		if c.artworks[i].ID == id {
			c.artworks = append(c.artworks[:i], c.artworks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// MarkSold flips the Sold flag on. Selling an already-sold artwork is a
// no-op, not an error; the session layer decides whether repeat purchases
// are allowed.
func (c *Catalog) MarkSold(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.artworks {
		if c.artworks[i].ID == id {
			c.artworks[i].Sold = true
			return nil
		}
	}
	return ErrNotFound
}

// RevenueByArtist sums the prices of the artist's sold artworks.
func (c *Catalog) RevenueByArtist(artistID int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, a := range c.artworks {
		if a.ArtistID == artistID && a.Sold {
			total += a.Price
		}
	}
	return total
}

// SoldCount returns how many artworks are marked sold.
func (c *Catalog) SoldCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, a := range c.artworks {
		if a.Sold {
			n++
		}
	}
	return n
}

// Len returns the number of artworks.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.artworks)
}

func (c *Catalog) nextArtworkID() int {
	max := 0
	for _, a := range c.artworks {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}
