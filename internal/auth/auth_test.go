package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgig/campusgig/internal/db/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.NoError(t, CheckPassword("hunter22", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("hunter22"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{Name: "Priya", Email: "priya@example.com"}
	user.ID = 7

	token, err := GenerateToken(user, secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Priya", claims.Name)
	assert.Equal(t, "priya@example.com", claims.Email)
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	secret := []byte("test-secret")
	user := &models.User{Name: "Priya", Email: "priya@example.com"}
	user.ID = 7

	// Wrong secret
	token, err := GenerateToken(user, secret, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Expired token
	expired, err := GenerateToken(user, secret, -time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(expired, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Garbage
	_, err = ParseToken("not.a.token", secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
