package session

import (
	"testing"

	"github.com/MajhiMohit/fsd-16-project/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlaintextVerifier(t *testing.T) {
	v := Plaintext{}
	u := models.User{Password: "admin123"}

	assert.True(t, v.Verify(u, "admin123"))
	assert.False(t, v.Verify(u, "admin124"))
	assert.False(t, v.Verify(u, "Admin123"))
	assert.False(t, v.Verify(u, ""))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	v := Bcrypt{}
	u := models.User{Password: string(hash)}

	assert.True(t, v.Verify(u, "admin123"))
	assert.False(t, v.Verify(u, "admin124"))
	assert.False(t, v.Verify(u, ""))
}
