package catalog

import (
	"sort"
	"strings"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// AnyFilter is the wildcard value for Category and Era.
const AnyFilter = "All"

// Filter narrows the browse listing. Query matches title, artist, or any
// tag, case-insensitively; empty fields match everything.
type Filter struct {
	Query    string
	Category string
	Era      string
}

// Matches reports whether the artwork passes every set filter field.
func (f Filter) Matches(a models.Artwork) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		hit := strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Artist), q)
		for _, t := range a.Tags {
			if hit {
				break
			}
			hit = strings.Contains(strings.ToLower(t), q)
		}
		if !hit {
			return false
		}
	}
	if f.Category != "" && f.Category != AnyFilter && a.Category != f.Category {
		return false
	}
	if f.Era != "" && f.Era != AnyFilter && a.Era != f.Era {
		return false
	}
	return true
}

// Sort selects the browse ordering.
type Sort string

const (
	// SortFeatured floats featured artworks to the front, keeping catalog
	// order otherwise. This is the default.
	SortFeatured Sort = "featured"
	// SortNewest orders by creation year, most recent first.
	SortNewest Sort = "newest"
	// SortTopRated orders by rating, highest first.
	SortTopRated Sort = "rating"
)

// Browse returns the artworks passing the filter, ordered by the given
// sort. The catalog itself is never reordered.
func (c *Catalog) Browse(f Filter, by Sort) []models.Artwork {
	c.mu.RLock()
	var out []models.Artwork
	for _, a := range c.artworks {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	c.mu.RUnlock()

	switch by {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case SortTopRated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}
	return out
}

// Categories returns the distinct artwork categories, in catalog order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(a models.Artwork) string { return a.Category })
}

// Eras returns the distinct artwork eras, in catalog order.
func (c *Catalog) Eras() []string {
	return c.distinct(func(a models.Artwork) string { return a.Era })
}

func (c *Catalog) distinct(key func(models.Artwork) string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, a := range c.artworks {
		k := key(a)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
