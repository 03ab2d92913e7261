package session

import (
	"crypto/subtle"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a supplied password against a directory entry.
// The store's control flow never looks at the stored credential directly,
// so swapping the mock plaintext scheme for a hashed one is a one-line
// change at construction time.
type CredentialVerifier interface {
	Verify(stored models.User, password string) bool
}

// Plaintext compares the supplied password to the directory's plaintext
// mock credential in constant time. This matches the seeded dataset and is
// not a production credential scheme.
type Plaintext struct{}

func (Plaintext) Verify(stored models.User, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored.Password), []byte(password)) == 1
}

// Bcrypt treats the stored credential as a bcrypt hash. Use this when the
// directory is loaded from a source that stores hashes instead of the mock
// plaintext list.
type Bcrypt struct{}

func (Bcrypt) Verify(stored models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(password)) == nil
}
