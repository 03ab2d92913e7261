package models

// Artwork is a single catalog item. Image is an opaque URL; the application
// never fetches or decodes it.
type Artwork struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Artist               string   `json:"artist"`
	ArtistID             int      `json:"artistId"`
	Image                string   `json:"image"`
	Price                int      `json:"price"`
	Sold                 bool     `json:"sold"`
	Featured             bool     `json:"featured"`
	Rating               float64  `json:"rating"`
	Reviews              int      `json:"reviews"`
	Views                int      `json:"views"`
	Year                 int      `json:"year"`
	Category             string   `json:"category"`
	Era                  string   `json:"era"`
	Medium               string   `json:"medium"`
	Dimensions           string   `json:"dimensions"`
	Origin               string   `json:"origin"`
	Description          string   `json:"description"`
	CulturalSignificance string   `json:"culturalSignificance"`
	Tags                 []string `json:"tags"`
}
