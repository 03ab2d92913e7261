// Package models defines the domain records shared across the gallery
// application: users and their roles, artworks, exhibitions, tour rooms,
// reviews, and purchase records.
package models

// Role determines which dashboard a user lands on and which
// role-restricted views they may enter.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleArtist  Role = "artist"
	RoleCurator Role = "curator"
	RoleVisitor Role = "visitor"
)

// Roles lists every known role, in registration-form order.
var Roles = []Role{RoleVisitor, RoleArtist, RoleCurator, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleArtist, RoleCurator, RoleVisitor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
