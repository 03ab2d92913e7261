package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MajhiMohit/fsd-16-project/internal/catalog"
	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// Home shows the landing page: featured artworks and running exhibitions.
func (a *App) Home(ctx context.Context) error {
	printlnFn("FEATURED")
	for _, art := range a.catalog.Browse(catalog.Filter{}, catalog.SortFeatured) {
		if !art.Featured {
			break
		}
		a.printArtworkLine(art)
	}

	printlnFn("EXHIBITIONS")
	for _, ex := range a.catalog.Exhibitions() {
		printlnFn(fmt.Sprintf("  [%d] %s — %s (curated by %s)", ex.ID, ex.Title, ex.Theme, ex.Curator))
	}
	return nil
}

// Gallery lists artworks through the browse filter. Arguments are
// key=value pairs: search=, category=, era=, sort=featured|newest|rating.
func (a *App) Gallery(ctx context.Context, args []string) error {
	var f catalog.Filter
	by := catalog.SortFeatured

	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			printlnFn("Usage: gallery [search=…] [category=…] [era=…] [sort=featured|newest|rating]")
			return nil
		}
		switch k {
		case "search":
			f.Query = v
		case "category":
			f.Category = v
		case "era":
			f.Era = v
		case "sort":
			by = catalog.Sort(v)
		default:
			printlnFn("Unknown filter:", k)
			return nil
		}
	}

	arts := a.catalog.Browse(f, by)
	if len(arts) == 0 {
		printlnFn("No artworks match.")
		return nil
	}
	for _, art := range arts {
		a.printArtworkLine(art)
	}
	printlnFn(fmt.Sprintf("%d artwork(s). Categories: %s. Eras: %s.",
		len(arts),
		strings.Join(a.catalog.Categories(), ", "),
		strings.Join(a.catalog.Eras(), ", ")))
	return nil
}

// Show renders the artwork detail page: full record, curator note, reviews,
// and related pieces.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Not an artwork id:", args[0])
		return nil
	}

	art, err := a.catalog.Artwork(id)
	if err != nil {
		printlnFn("No such artwork.")
		return err
	}

	printlnFn(fmt.Sprintf("%s (%d) — %s", art.Title, art.Year, art.Artist))
	printlnFn(fmt.Sprintf("  %s · %s · %s · %s", art.Category, art.Era, art.Medium, art.Dimensions))
	printlnFn(fmt.Sprintf("  %s  %s (%d reviews) · %d views", stars(art.Rating), strconv.FormatFloat(art.Rating, 'g', -1, 64), art.Reviews, art.Views))
	if art.Sold {
		printlnFn("  SOLD")
	} else {
		printlnFn("  " + formatINR(art.Price))
	}
	printlnFn("  " + art.Description)
	printlnFn("  Origin: " + art.Origin + " — " + art.CulturalSignificance)
	printlnFn("  Tags: " + strings.Join(art.Tags, ", "))

	if notes := a.catalog.Annotations(art.ID); len(notes) > 0 {
		printlnFn("  Curator's notes:")
		for _, n := range notes {
			printlnFn(fmt.Sprintf("    %s — %s", n.Date.Format("Jan 2, 2006"), n.Text))
		}
	}
	if a.session.IsWishlisted(art.ID) {
		printlnFn("  ♥ In your wishlist")
	}

	if reviews := a.catalog.Reviews(art.ID); len(reviews) > 0 {
		printlnFn("REVIEWS")
		for _, r := range reviews {
			printlnFn(fmt.Sprintf("  %s %s — %s", stars(float64(r.Rating)), r.Author, r.Comment))
		}
	}

	if related := a.catalog.Related(art.ID, 3); len(related) > 0 {
		printlnFn("RELATED")
		for _, rel := range related {
			a.printArtworkLine(rel)
		}
	}
	return nil
}

// Exhibitions lists every exhibition with its resolved artworks.
func (a *App) Exhibitions(ctx context.Context) error {
	for _, ex := range a.catalog.Exhibitions() {
		flag := ""
		if ex.Featured {
			flag = " [featured]"
		}
		printlnFn(fmt.Sprintf("[%d] %s%s — %s", ex.ID, ex.Title, flag, ex.Theme))
		printlnFn(fmt.Sprintf("    Curated by %s · %s – %s", ex.Curator,
			ex.StartDate.Format("Jan 2"), ex.EndDate.Format("Jan 2, 2006")))
		printlnFn("    " + ex.Description)
		arts, err := a.catalog.ExhibitionArtworks(ex.ID)
		if err != nil {
			continue
		}
		for _, art := range arts {
			a.printArtworkLine(art)
		}
	}
	return nil
}

// Tour walks the virtual-tour rooms. With no argument it re-renders the
// current room; "next"/"prev" wrap around; a number jumps to that room.
func (a *App) Tour(ctx context.Context, args []string) error {
	rooms := a.catalog.Rooms()
	if len(rooms) == 0 {
		printlnFn("The gallery is closed.")
		return nil
	}

	if len(args) > 0 {
		switch args[0] {
		case "next":
			a.currentRoom = (a.currentRoom + 1) % len(rooms)
		case "prev":
			a.currentRoom = (a.currentRoom - 1 + len(rooms)) % len(rooms)
		default:
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(rooms) {
				printlnFn("Usage: tour [next|prev|<1.." + strconv.Itoa(len(rooms)) + ">]")
				return nil
			}
			a.currentRoom = n - 1
		}
	}

	room := rooms[a.currentRoom]
	printlnFn(fmt.Sprintf("Room %d of %d — %s", a.currentRoom+1, len(rooms), room.Name))
	printlnFn("  " + room.Description)
	arts, err := a.catalog.RoomArtworks(room.ID)
	if err != nil {
		return err
	}
	for _, art := range arts {
		a.printArtworkLine(art)
	}
	return nil
}

func (a *App) printArtworkLine(art models.Artwork) {
	status := formatINR(art.Price)
	if art.Sold {
		status = "SOLD"
	}
	printlnFn(fmt.Sprintf("  [%d] %q by %s — %s · %s", art.ID, art.Title, art.Artist, art.Category, status))
}
