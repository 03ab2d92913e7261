package models

import "time"

// Review is a visitor comment attached to an artwork.
type Review struct {
	ID        int       `json:"id"`
	ArtworkID int       `json:"artworkId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}
