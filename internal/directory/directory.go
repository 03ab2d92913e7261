// Package directory holds the user directory: the seeded, append-only
// registry the session layer authenticates against. It is read-only to the
// rest of the application except for registration appends.
package directory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
)

// ErrNotFound indicates no directory entry matches the given email.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateEmail indicates a registration attempt with an email that is
// already taken.
var ErrDuplicateEmail = errors.New("email already registered")

// Directory is an in-memory user registry unique by email.
type Directory struct {
	mu    sync.RWMutex
	users []models.User
}

// New returns a directory seeded with the given users.
func New(users []models.User) *Directory {
	d := &Directory{users: make([]models.User, len(users))}
	copy(d.users, users)
	return d
}

// FindByEmail returns the entry with the exact (case-sensitive) email,
// or ErrNotFound.
func (d *Directory) FindByEmail(email string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Add appends a new user. The ID is assigned here; the caller's ID field is
// ignored. Fails with ErrDuplicateEmail when the email is already present.
func (d *Directory) Add(u models.User) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.users {
		if existing.Email == u.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	u.ID = len(d.users) + 1
	if u.Avatar == "" {
		u.Avatar = AvatarURL(u.Email)
	}
	d.users = append(d.users, u)
	return u, nil
}

// All returns a copy of every directory entry, in insertion order.
func (d *Directory) All() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// Count returns the number of registered users.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// CountByRole returns how many users hold the given role.
func (d *Directory) CountByRole(role models.Role) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := 0
	for _, u := range d.users {
		if u.Role == role {
			n++
		}
	}
	return n
}

// AvatarURL derives a deterministic placeholder avatar for an email, the
// same scheme the seeded users use.
func AvatarURL(email string) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?u=%s", strings.TrimSpace(email))
}
