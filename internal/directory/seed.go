package directory

import "github.com/MajhiMohit/fsd-16-project/internal/models"

// Seed returns the mock user directory: one account per role plus a second
// artist and visitor. Passwords are plaintext mock credentials.
func Seed() []models.User {
	return []models.User{
		{ID: 1, Name: "Aarav Mehta", Email: "admin@gallery.com", Password: "admin123", Role: models.RoleAdmin, Avatar: AvatarURL("admin@gallery.com")},
		{ID: 2, Name: "Meera Pillai", Email: "meera@gallery.com", Password: "artist123", Role: models.RoleArtist, Avatar: AvatarURL("meera@gallery.com")},
		{ID: 3, Name: "Ravi Varma Iyer", Email: "ravi@gallery.com", Password: "artist123", Role: models.RoleArtist, Avatar: AvatarURL("ravi@gallery.com")},
		{ID: 4, Name: "Isabelle Laurent", Email: "isabelle@gallery.com", Password: "curator123", Role: models.RoleCurator, Avatar: AvatarURL("isabelle@gallery.com")},
		{ID: 5, Name: "Kabir Anand", Email: "kabir@gallery.com", Password: "visitor123", Role: models.RoleVisitor, Avatar: AvatarURL("kabir@gallery.com")},
		{ID: 6, Name: "Sana Qureshi", Email: "sana@gallery.com", Password: "visitor123", Role: models.RoleVisitor, Avatar: AvatarURL("sana@gallery.com")},
	}
}
