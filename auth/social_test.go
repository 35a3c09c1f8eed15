package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/storage"
)

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(storage.NewMemoryStore())

	user, token, err := svc.Login("google_2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", user.Name)
	assert.Equal(t, "google", user.Provider)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "google_2", claims["user_id"])

	current, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "google_2", current.ID)
}

func TestLoginUnknownAccount(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	_, _, err := svc.Login("google_99")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestLoginRecordsUserOnce(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := storage.NewMemoryStore()
	svc := NewService(store)

	_, _, err := svc.Login("google_1")
	require.NoError(t, err)
	_, _, err = svc.Login("google_1")
	require.NoError(t, err)

	var users []models.User
	storage.GetJSON(store, storage.KeyUsers, &users)
	assert.Len(t, users, 1)
}

func TestLogout(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(storage.NewMemoryStore())

	_, _, err := svc.Login("google_3")
	require.NoError(t, err)
	svc.Logout()

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}
