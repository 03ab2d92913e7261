package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// Dashboard renders the role's dashboard. Each dashboard is a protected
// view with its own allow-list, evaluated through the access guard like any
// other navigation. Role-specific sub-commands:
//
//	artist:  dashboard add | dashboard edit <id> | dashboard delete <id>
//	curator: dashboard create | dashboard toggle <exhibition> <artwork> |
//	         dashboard annotate <artwork> <text…>
func (a *App) Dashboard(ctx context.Context, args []string) error {
	if !a.guard(ctx, nil) {
		return nil
	}

	switch a.session.Role() {
	case models.RoleAdmin:
		return a.adminDashboard(ctx)
	case models.RoleArtist:
		return a.artistDashboard(ctx, args)
	case models.RoleCurator:
		return a.curatorDashboard(ctx, args)
	default:
		return a.visitorDashboard(ctx)
	}
}

func (a *App) adminDashboard(ctx context.Context) error {
	if !a.guard(ctx, []models.Role{models.RoleAdmin}) {
		return nil
	}

	printlnFn("ADMIN DASHBOARD")
	printlnFn(fmt.Sprintf("  Artworks: %d · Users: %d · Exhibitions: %d · Sales: %d",
		a.catalog.Len(), a.dir.Count(), len(a.catalog.Exhibitions()), a.catalog.SoldCount()))
	printlnFn(fmt.Sprintf("  Artists: %d · Curators: %d · Visitors: %d",
		a.dir.CountByRole(models.RoleArtist),
		a.dir.CountByRole(models.RoleCurator),
		a.dir.CountByRole(models.RoleVisitor)))

	printlnFn("USERS")
	for _, u := range a.dir.All() {
		printlnFn(fmt.Sprintf("  [%d] %s <%s> — %s", u.ID, u.Name, u.Email, u.Role))
	}

	printlnFn("ARTWORKS")
	for _, art := range a.catalog.Artworks() {
		a.printArtworkLine(art)
	}
	return nil
}

func (a *App) artistDashboard(ctx context.Context, args []string) error {
	if !a.guard(ctx, []models.Role{models.RoleArtist}) {
		return nil
	}
	u, _ := a.session.CurrentUser()

	if len(args) > 0 {
		switch args[0] {
		case "add":
			return a.artistAddArtwork(ctx, u)
		case "edit":
			if len(args) < 2 {
				printlnFn("Usage: dashboard edit <id>")
				return nil
			}
			return a.artistEditArtwork(ctx, u, args[1])
		case "delete":
			if len(args) < 2 {
				printlnFn("Usage: dashboard delete <id>")
				return nil
			}
			return a.artistDeleteArtwork(ctx, u, args[1])
		default:
			printlnFn("Usage: dashboard [add|edit <id>|delete <id>]")
			return nil
		}
	}

	mine := a.catalog.ArtworksByArtist(u.ID)
	sold := 0
	for _, art := range mine {
		if art.Sold {
			sold++
		}
	}
	printlnFn("ARTIST DASHBOARD — " + u.Name)
	printlnFn(fmt.Sprintf("  Artworks: %d · Sold: %d · Revenue: %s",
		len(mine), sold, formatINR(a.catalog.RevenueByArtist(u.ID))))
	for _, art := range mine {
		a.printArtworkLine(art)
	}
	return nil
}

func (a *App) artistAddArtwork(ctx context.Context, u models.User) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	era, err := getSimpleText(a.reader, "Era", os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, "Price (₹)", os.Stdout)
	if err != nil {
		return err
	}
	price, err := strconv.Atoi(priceText)
	if err != nil {
		printlnFn("Not a price:", priceText)
		return nil
	}
	tagsText, err := getSimpleText(a.reader, "Tags (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	var tags []string
	for _, t := range strings.Split(tagsText, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	art := a.catalog.AddArtwork(models.Artwork{
		Title:    title,
		Artist:   u.Name,
		ArtistID: u.ID,
		Price:    price,
		Category: category,
		Era:      era,
		Tags:     tags,
	})
	printlnFn(fmt.Sprintf("Added %q as artwork %d.", art.Title, art.ID))
	return nil
}

// artistEditArtwork reworks an existing artwork through the same prompts as
// the add flow. A blank answer keeps the current value.
func (a *App) artistEditArtwork(ctx context.Context, u models.User, idText string) error {
	id, err := strconv.Atoi(idText)
	if err != nil {
		printlnFn("Not an artwork id:", idText)
		return nil
	}
	art, err := a.catalog.Artwork(id)
	if err != nil || art.ArtistID != u.ID {
		printlnFn("Not one of your artworks.")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", art.Title), os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, fmt.Sprintf("Category [%s]", art.Category), os.Stdout)
	if err != nil {
		return err
	}
	era, err := getSimpleText(a.reader, fmt.Sprintf("Era [%s]", art.Era), os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, fmt.Sprintf("Price (₹) [%d]", art.Price), os.Stdout)
	if err != nil {
		return err
	}
	tagsText, err := getSimpleText(a.reader, fmt.Sprintf("Tags [%s]", strings.Join(art.Tags, ", ")), os.Stdout)
	if err != nil {
		return err
	}

	if title != "" {
		art.Title = title
	}
	if category != "" {
		art.Category = category
	}
	if era != "" {
		art.Era = era
	}
	if priceText != "" {
		price, err := strconv.Atoi(priceText)
		if err != nil {
			printlnFn("Not a price:", priceText)
			return nil
		}
		art.Price = price
	}
	if tagsText != "" {
		var tags []string
		for _, t := range strings.Split(tagsText, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		art.Tags = tags
	}

	if err := a.catalog.UpdateArtwork(art); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Updated %q.", art.Title))
	return nil
}

func (a *App) artistDeleteArtwork(ctx context.Context, u models.User, idText string) error {
	id, err := strconv.Atoi(idText)
	if err != nil {
		printlnFn("Not an artwork id:", idText)
		return nil
	}
	art, err := a.catalog.Artwork(id)
	if err != nil || art.ArtistID != u.ID {
		printlnFn("Not one of your artworks.")
		return nil
	}
	if err := a.catalog.DeleteArtwork(id); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Deleted %q.", art.Title))
	return nil
}

func (a *App) curatorDashboard(ctx context.Context, args []string) error {
	if !a.guard(ctx, []models.Role{models.RoleCurator}) {
		return nil
	}
	u, _ := a.session.CurrentUser()

	if len(args) > 0 {
		switch args[0] {
		case "create":
			return a.curatorCreateExhibition(ctx, u)
		case "toggle":
			if len(args) < 3 {
				printlnFn("Usage: dashboard toggle <exhibition> <artwork>")
				return nil
			}
			return a.curatorToggle(ctx, args[1], args[2])
		case "annotate":
			if len(args) < 3 {
				printlnFn("Usage: dashboard annotate <artwork> <text…>")
				return nil
			}
			return a.curatorAnnotate(ctx, args[1], strings.Join(args[2:], " "))
		default:
			printlnFn("Usage: dashboard [create|toggle <ex> <art>|annotate <art> <text…>]")
			return nil
		}
	}

	exhibitions := a.catalog.Exhibitions()
	printlnFn("CURATOR DASHBOARD — " + u.Name)
	printlnFn(fmt.Sprintf("  Exhibitions: %d · Featured: %d",
		len(exhibitions), a.catalog.FeaturedExhibitionCount()))
	for _, ex := range exhibitions {
		printlnFn(fmt.Sprintf("  [%d] %s — %d artwork(s)", ex.ID, ex.Title, len(ex.ArtworkIDs)))
	}
	return nil
}

func (a *App) curatorCreateExhibition(ctx context.Context, u models.User) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	theme, err := getSimpleText(a.reader, "Theme", os.Stdout)
	if err != nil {
		return err
	}
	idsText, err := getSimpleText(a.reader, "Artwork ids (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	var ids []int
	for _, part := range strings.Split(idsText, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			printlnFn("Not an artwork id:", part)
			return nil
		}
		ids = append(ids, id)
	}

	ex := a.catalog.AddExhibition(models.Exhibition{
		Title:      title,
		Theme:      theme,
		Curator:    u.Name,
		ArtworkIDs: ids,
	})
	printlnFn(fmt.Sprintf("Created exhibition %d: %s.", ex.ID, ex.Title))
	return nil
}

func (a *App) curatorToggle(ctx context.Context, exText, artText string) error {
	exID, err1 := strconv.Atoi(exText)
	artID, err2 := strconv.Atoi(artText)
	if err1 != nil || err2 != nil {
		printlnFn("Usage: dashboard toggle <exhibition> <artwork>")
		return nil
	}
	if err := a.catalog.ToggleExhibitionArtwork(exID, artID); err != nil {
		printlnFn("No such exhibition.")
		return err
	}
	printlnFn("Selection updated.")
	return nil
}

func (a *App) curatorAnnotate(ctx context.Context, artText, note string) error {
	artID, err := strconv.Atoi(artText)
	if err != nil {
		printlnFn("Not an artwork id:", artText)
		return nil
	}
	if _, err := a.catalog.Artwork(artID); err != nil {
		printlnFn("No such artwork.")
		return err
	}
	a.catalog.Annotate(artID, note)
	printlnFn("Note saved.")
	return nil
}

func (a *App) visitorDashboard(ctx context.Context) error {
	if !a.guard(ctx, []models.Role{models.RoleVisitor}) {
		return nil
	}
	u, _ := a.session.CurrentUser()

	printlnFn("VISITOR DASHBOARD — " + u.Name)
	printlnFn(fmt.Sprintf("  Artworks: %d · Available: %d · Wishlisted: %d · Purchased: %d",
		a.catalog.Len(), a.catalog.Len()-a.catalog.SoldCount(),
		len(a.session.Wishlist()), len(a.session.Purchases())))
	return nil
}
