package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rS3cret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rS3cret!", hash)

	assert.True(t, CheckPasswordHash("Sup3rS3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT("session-123", secret, time.Hour)
	assert.NoError(t, err)

	sessionID, err := ParseJWT(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)

	t.Run("Wrong Secret", func(t *testing.T) {
		_, err := ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired, err := GenerateJWT("session-123", secret, -time.Minute)
		assert.NoError(t, err)

		_, err = ParseJWT(expired, secret)
		assert.Error(t, err)
	})
}
