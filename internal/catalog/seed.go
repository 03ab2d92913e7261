package catalog

import (
	"time"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// Mock dataset. Artist ids line up with the seeded user directory; room
// selections reference artworks by id.

// SeedArtworks returns the mock artwork collection.
func SeedArtworks() []models.Artwork {
	return []models.Artwork{
		{
			ID: 1, Title: "Monsoon Over Bundi", Artist: "Meera Pillai", ArtistID: 2,
			Image: "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?w=800&q=80",
			Price: 185000, Featured: true, Rating: 4.8, Reviews: 3, Views: 2890,
			Year: 2021, Category: "Painting", Era: "Contemporary",
			Medium: "Oil on canvas", Dimensions: "90 × 120 cm", Origin: "Rajasthan, India",
			Description: "A storm rolls over the blue city, rendered in heavy impasto strokes.",
			CulturalSignificance: "Continues the Bundi school's fascination with monsoon skies.",
			Tags: []string{"monsoon", "landscape", "impasto"},
		},
		{
			ID: 2, Title: "Dancer at Dusk", Artist: "Ravi Varma Iyer", ArtistID: 3,
			Image: "https://images.unsplash.com/photo-1582555172866-f73bb12a2ab3?w=800&q=80",
			Price: 240000, Featured: true, Rating: 4.9, Reviews: 2, Views: 4120,
			Year: 2019, Category: "Painting", Era: "Modern",
			Medium: "Oil on canvas", Dimensions: "75 × 100 cm", Origin: "Kerala, India",
			Description: "A Mohiniyattam dancer caught mid-turn against a fading temple courtyard.",
			CulturalSignificance: "Nods to the academic realism of the Travancore court painters.",
			Tags: []string{"dance", "portrait", "kerala"},
		},
		{
			ID: 3, Title: "Terracotta Horse of Bankura", Artist: "Meera Pillai", ArtistID: 2,
			Image: "https://images.unsplash.com/photo-1544967082-d9d25d867d66?w=800&q=80",
			Price: 95000, Sold: true, Rating: 4.5, Reviews: 1, Views: 1530,
			Year: 2018, Category: "Sculpture", Era: "Contemporary",
			Medium: "Terracotta", Dimensions: "60 cm tall", Origin: "West Bengal, India",
			Description: "A long-necked votive horse, fired in the traditional open kiln.",
			CulturalSignificance: "The Bankura horse is the living emblem of Bengali folk craft.",
			Tags: []string{"terracotta", "folk", "bengal"},
		},
		{
			ID: 4, Title: "Pichwai of the Lotus Pond", Artist: "Ravi Varma Iyer", ArtistID: 3,
			Image: "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=800&q=80",
			Price: 310000, Featured: true, Rating: 4.7, Reviews: 2, Views: 3675,
			Year: 1998, Category: "Folk Art", Era: "Modern",
			Medium: "Natural pigment on starched cloth", Dimensions: "150 × 180 cm", Origin: "Nathdwara, India",
			Description: "Lotus blooms and cows wade through a gold-flecked pond backdrop.",
			CulturalSignificance: "Pichwais hang behind the deity of Shrinathji during festivals.",
			Tags: []string{"pichwai", "devotional", "textile"},
		},
		{
			ID: 5, Title: "Chai Stall, Chandni Chowk", Artist: "Meera Pillai", ArtistID: 2,
			Image: "https://images.unsplash.com/photo-1532375810709-75b1da00537c?w=800&q=80",
			Price: 68000, Rating: 4.3, Reviews: 1, Views: 980,
			Year: 2023, Category: "Photography", Era: "Contemporary",
			Medium: "Archival pigment print", Dimensions: "40 × 60 cm", Origin: "Delhi, India",
			Description: "Steam, brass kettles, and a vendor's practiced pour at blue hour.",
			CulturalSignificance: "Documents the street-food rituals of Old Delhi.",
			Tags: []string{"street", "delhi", "print"},
		},
		{
			ID: 6, Title: "Miniature of the Hunt", Artist: "Ravi Varma Iyer", ArtistID: 3,
			Image: "https://images.unsplash.com/photo-1577720580479-7d839d829c73?w=800&q=80",
			Price: 425000, Rating: 4.6, Reviews: 0, Views: 2210,
			Year: 1760, Category: "Painting", Era: "Mughal",
			Medium: "Opaque watercolor and gold on paper", Dimensions: "22 × 30 cm", Origin: "Jaipur, India",
			Description: "A royal hunting party threads through stylized hills and flowering trees.",
			CulturalSignificance: "Late Jaipur atelier work in the imperial Mughal idiom.",
			Tags: []string{"miniature", "mughal", "gold"},
		},
		{
			ID: 7, Title: "Warli Harvest Circle", Artist: "Meera Pillai", ArtistID: 2,
			Image: "https://images.unsplash.com/photo-1549289524-06cf8837ace5?w=800&q=80",
			Price: 52000, Rating: 4.4, Reviews: 2, Views: 1245,
			Year: 2022, Category: "Folk Art", Era: "Contemporary",
			Medium: "Rice paste on cow-dung ground", Dimensions: "60 × 90 cm", Origin: "Maharashtra, India",
			Description: "Stick figures spiral in the tarpa dance around a central drummer.",
			CulturalSignificance: "The circle dance is the oldest motif of Warli wall painting.",
			Tags: []string{"warli", "tribal", "dance"},
		},
		{
			ID: 8, Title: "Ghats at First Light", Artist: "Ravi Varma Iyer", ArtistID: 3,
			Image: "https://images.unsplash.com/photo-1561361513-2d000a50f0dc?w=800&q=80",
			Price: 135000, Featured: true, Rating: 4.2, Reviews: 1, Views: 1870,
			Year: 2020, Category: "Photography", Era: "Contemporary",
			Medium: "Silver gelatin print", Dimensions: "50 × 75 cm", Origin: "Varanasi, India",
			Description: "Boats, bathers, and temple spires dissolve into river mist.",
			CulturalSignificance: "Part of a decade-long study of the Varanasi riverfront.",
			Tags: []string{"varanasi", "river", "monochrome"},
		},
	}
}

// SeedExhibitions returns the mock exhibitions.
func SeedExhibitions() []models.Exhibition {
	return []models.Exhibition{
		{
			ID: 1, Title: "Pigment & Prayer", Theme: "Devotional Art", Curator: "Isabelle Laurent",
			StartDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.May, 26, 0, 0, 0, 0, time.UTC),
			Description: "Sacred image-making from temple cloth to courtly miniature.",
			CoverImage:  "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=1200&q=80",
			Featured:    true, ArtworkIDs: []int{4, 6},
		},
		{
			ID: 2, Title: "Street Level", Theme: "Documentary Photography", Curator: "Isabelle Laurent",
			StartDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
			Description: "Two photographic studies of Indian city life, dawn to dusk.",
			CoverImage:  "https://images.unsplash.com/photo-1532375810709-75b1da00537c?w=1200&q=80",
			ArtworkIDs:  []int{5, 8},
		},
		{
			ID: 3, Title: "Hands of the Village", Theme: "Folk & Tribal", Curator: "Isabelle Laurent",
			StartDate: time.Date(2024, time.April, 14, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, time.August, 18, 0, 0, 0, 0, time.UTC),
			Description: "Living craft traditions: Warli walls and Bankura kilns.",
			CoverImage:  "https://images.unsplash.com/photo-1549289524-06cf8837ace5?w=1200&q=80",
			Featured:    true, ArtworkIDs: []int{7, 3},
		},
	}
}

// SeedRooms returns the virtual-tour rooms.
func SeedRooms() []models.Room {
	return []models.Room{
		{
			ID: 1, Name: "The Gold Hall", Ambiance: "#c9a84c",
			Description: "Featured masterworks under warm gallery light.",
			ArtworkIDs:  []int{1, 4},
		},
		{
			ID: 2, Name: "Village Voices", Ambiance: "#8a5a3b",
			Description: "Folk and tribal traditions, floor to ceiling.",
			ArtworkIDs:  []int{7, 6},
		},
		{
			ID: 3, Name: "Earth & Ash", Ambiance: "#6b7f5a",
			Description: "Sculpture and street photography in conversation.",
			ArtworkIDs:  []int{3, 5, 8},
		},
		{
			ID: 4, Name: "The Court Room", Ambiance: "#7c5cbf",
			Description: "Courtly painting from Mughal ateliers to modern Kerala.",
			ArtworkIDs:  []int{2, 6},
		},
	}
}

// SeedReviews returns the mock visitor reviews.
func SeedReviews() []models.Review {
	return []models.Review{
		{ID: 1, ArtworkID: 1, Author: "Kabir Anand", Rating: 5, Comment: "The storm practically moves.", Date: time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC)},
		{ID: 2, ArtworkID: 1, Author: "Sana Qureshi", Rating: 5, Comment: "Saw it in person — even better.", Date: time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 3, ArtworkID: 1, Author: "Isabelle Laurent", Rating: 4, Comment: "A strong continuation of the series.", Date: time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 4, ArtworkID: 2, Author: "Kabir Anand", Rating: 5, Comment: "The light on the courtyard is remarkable.", Date: time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)},
		{ID: 5, ArtworkID: 2, Author: "Sana Qureshi", Rating: 5, Comment: "Could not look away.", Date: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)},
		{ID: 6, ArtworkID: 3, Author: "Sana Qureshi", Rating: 4, Comment: "Beautiful glazing on the neck.", Date: time.Date(2024, time.January, 19, 0, 0, 0, 0, time.UTC)},
		{ID: 7, ArtworkID: 4, Author: "Kabir Anand", Rating: 5, Comment: "The gold detail is astonishing up close.", Date: time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)},
		{ID: 8, ArtworkID: 4, Author: "Sana Qureshi", Rating: 4, Comment: "Wonderful composition.", Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 9, ArtworkID: 5, Author: "Kabir Anand", Rating: 4, Comment: "You can almost smell the cardamom.", Date: time.Date(2024, time.March, 30, 0, 0, 0, 0, time.UTC)},
		{ID: 10, ArtworkID: 7, Author: "Isabelle Laurent", Rating: 4, Comment: "A faithful, lively rendering of the tarpa.", Date: time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 11, ArtworkID: 7, Author: "Kabir Anand", Rating: 5, Comment: "My favourite of the folk room.", Date: time.Date(2024, time.April, 11, 0, 0, 0, 0, time.UTC)},
		{ID: 12, ArtworkID: 8, Author: "Sana Qureshi", Rating: 4, Comment: "The mist is pure atmosphere.", Date: time.Date(2024, time.April, 22, 0, 0, 0, 0, time.UTC)},
	}
}
