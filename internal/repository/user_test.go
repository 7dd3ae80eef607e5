package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreate_DefaultsRole(t *testing.T) {
	users := NewUserRepository(newTestDB(t), false)

	user, err := users.Create("alice@example.com", "secret", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "user", user.Role)

	admin, err := users.Create("bob@example.com", "secret", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
}

func TestFindByCredentials_ExactMatch(t *testing.T) {
	users := NewUserRepository(newTestDB(t), false)

	created, err := users.Create("alice@example.com", "secret", "")
	require.NoError(t, err)

	found, err := users.FindByCredentials("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Wrong password never matches
	_, err = users.FindByCredentials("alice@example.com", "wrong")
	assert.True(t, IsNotFound(err))

	// Unknown email never matches
	_, err = users.FindByCredentials("nobody@example.com", "secret")
	assert.True(t, IsNotFound(err))
}

func TestFindByCredentials_HashedMode(t *testing.T) {
	users := NewUserRepository(newTestDB(t), true)

	created, err := users.Create("alice@example.com", "secret", "")
	require.NoError(t, err)

	// The stored credential is a bcrypt hash, not the raw password
	assert.NotEqual(t, "secret", created.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret")))

	found, err := users.FindByCredentials("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = users.FindByCredentials("alice@example.com", "wrong")
	assert.True(t, IsNotFound(err))
}
