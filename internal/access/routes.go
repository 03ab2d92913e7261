// Package access decides whether a role-restricted view may be shown to
// the current session. The decision is a pure function of the session's
// loading flag, authentication state, and role; the caller (the navigation
// layer) carries out any redirect.
package access

import "github.com/MajhiMohit/fsd-16-project/internal/models"

// Route names a navigable view. The values mirror the application's paths.
type Route string

const (
	RouteRoot        Route = "/"
	RouteLogin       Route = "/login"
	RouteGallery     Route = "/gallery"
	RouteAdminHome   Route = "/admin"
	RouteArtistHome  Route = "/artist"
	RouteCuratorHome Route = "/curator"
)

// RoleHome maps each role to its default landing route. Both the guard and
// post-login navigation read this table, so the mapping lives in exactly
// one place.
var RoleHome = map[models.Role]Route{
	models.RoleAdmin:   RouteAdminHome,
	models.RoleArtist:  RouteArtistHome,
	models.RoleCurator: RouteCuratorHome,
	models.RoleVisitor: RouteGallery,
}

// HomeFor returns the landing route for a role, falling back to the site
// root for unknown roles.
func HomeFor(role models.Role) Route {
	if home, ok := RoleHome[role]; ok {
		return home
	}
	return RouteRoot
}
