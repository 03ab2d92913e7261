package catalog

import "github.com/MajhiMohit/fsd-16-project/internal/models"

// Rooms returns the virtual-tour rooms in tour order.
func (c *Catalog) Rooms() []models.Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Room(nil), c.rooms...)
}

// Room returns the room with the given id, or ErrNotFound.
func (c *Catalog) Room(id int) (models.Room, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Room{}, ErrNotFound
}

// RoomArtworks resolves a room's hung artworks, in hanging order.
func (c *Catalog) RoomArtworks(roomID int) ([]models.Artwork, error) {
	r, err := c.Room(roomID)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Artwork
	for _, id := range r.ArtworkIDs {
		for _, a := range c.artworks {
			if a.ID == id {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}
