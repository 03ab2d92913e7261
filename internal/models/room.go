package models

// Room is one themed space of the virtual tour. Ambiance is the accent
// color a renderer may use for the room's walls.
type Room struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Ambiance    string `json:"ambiance"`
	ArtworkIDs  []int  `json:"artworkIds"`
}
