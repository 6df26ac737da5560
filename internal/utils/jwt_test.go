package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret"
	memberID := uuid.New()

	token, err := GenerateToken(secret, memberID, "a@b.com", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotEmail, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, memberID, gotID)
	assert.Equal(t, "a@b.com", gotEmail)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-one", uuid.New(), "a@b.com", time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken("secret-two", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", uuid.New(), "a@b.com", -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("test-secret", "not-a-token")
	assert.Error(t, err)
}
