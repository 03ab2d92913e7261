package models

// User is a record in the user directory.
//
// Password is the mock plaintext credential from the seeded directory; it is
// deliberately excluded from JSON so the persisted session record carries
// only {id, name, email, role, avatar}.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
}
