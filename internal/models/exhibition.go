package models

import "time"

// Exhibition is a curated selection of artworks with a running period.
type Exhibition struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Theme       string    `json:"theme"`
	Curator     string    `json:"curator"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	Featured    bool      `json:"featured"`
	ArtworkIDs  []int     `json:"artworkIds"`
}

// Contains reports whether the exhibition includes the given artwork.
func (e *Exhibition) Contains(artworkID int) bool {
	for _, id := range e.ArtworkIDs {
		if id == artworkID {
			return true
		}
	}
	return false
}
