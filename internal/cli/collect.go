package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// Wish toggles an artwork in the wishlist. Requires a logged-in session;
// logged-out users are sent to the login page, like the heart button on the
// detail page.
func (a *App) Wish(ctx context.Context, args []string) error {
	if !a.guard(ctx, nil) {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: wish <id>")
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

	a.session.ToggleWishlist(ctx, art.ID)
	if a.session.IsWishlisted(art.ID) {
		printlnFn(fmt.Sprintf("Added %q to your wishlist.", art.Title))
	} else {
		printlnFn(fmt.Sprintf("Removed %q from your wishlist.", art.Title))
	}
	return nil
}

// WishlistPage renders the wishlist, resolving ids against the catalog.
// Entries whose artwork has been deleted are shown by id only.
func (a *App) WishlistPage(ctx context.Context) error {
	if !a.guard(ctx, nil) {
		return nil
	}

	ids := a.session.Wishlist()
	if len(ids) == 0 {
		printlnFn("Your wishlist is empty.")
		return nil
	}
	for _, id := range ids {
		art, err := a.catalog.Artwork(id)
		if err != nil {
			printlnFn(fmt.Sprintf("  [%d] (no longer in the catalog)", id))
			continue
		}
		a.printArtworkLine(art)
	}
	return nil
}

// Buy purchases an artwork: records the purchase and marks the piece sold.
// Sold artworks cannot be bought again from this page.
func (a *App) Buy(ctx context.Context, args []string) error {
	if !a.guard(ctx, nil) {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: buy <id>")
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
	if art.Sold {
		printlnFn(fmt.Sprintf("%q has already been sold.", art.Title))
		return nil
	}

	p := a.session.AddPurchase(ctx, art)
	if err := a.catalog.MarkSold(art.ID); err != nil {
		a.log.Warn(ctx, "could not mark artwork sold", "artwork", art.ID, "error", err)
	}
	printlnFn(fmt.Sprintf("Purchased %q for %s. Receipt %s.", art.Title, formatINR(art.Price), p.ReceiptID))
	return nil
}

// Review submits a review for an artwork: author from the current session,
// a 1–5 rating, and a required comment. Newest reviews show first on the
// detail page.
func (a *App) Review(ctx context.Context, args []string) error {
	if !a.guard(ctx, nil) {
		return nil
	}
	if len(args) < 3 {
		printlnFn("Usage: review <id> <rating 1-5> <comment…>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Not an artwork id:", args[0])
		return nil
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 1 || rating > 5 {
		printlnFn("The rating must be a number from 1 to 5.")
		return nil
	}
	comment := strings.TrimSpace(strings.Join(args[2:], " "))
	if comment == "" {
		printlnFn("A comment is required.")
		return nil
	}

	u, _ := a.session.CurrentUser()
	if _, err := a.catalog.AddReview(id, u.Name, rating, comment); err != nil {
		printlnFn("No such artwork.")
		return err
	}
	printlnFn("Thanks for your review!")
	return nil
}

// PurchasesPage renders the purchase history in acquisition order. Only
// visitors and admins hold purchase histories; other roles are sent to
// their own dashboards.
func (a *App) PurchasesPage(ctx context.Context) error {
	if !a.guard(ctx, []models.Role{models.RoleVisitor, models.RoleAdmin}) {
		return nil
	}

	purchases := a.session.Purchases()
	if len(purchases) == 0 {
		printlnFn("No purchases yet.")
		return nil
	}
	total := 0
	for _, p := range purchases {
		printlnFn(fmt.Sprintf("  %s — %q by %s, %s (receipt %s)",
			p.PurchasedAt.Format("2006-01-02 15:04"), p.Title, p.Artist, formatINR(p.Price), p.ReceiptID))
		total += p.Price
	}
	printlnFn(fmt.Sprintf("%d purchase(s), %s total.", len(purchases), formatINR(total)))
	return nil
}
