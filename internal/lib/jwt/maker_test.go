package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	accessTTL := 15 * time.Minute
	refreshTTL := 7 * 24 * time.Hour
	maker := NewMaker(secretKey, accessTTL, refreshTTL)

	tests := []struct {
		name    string
		subject string
	}{
		{
			name:    "plain username",
			subject: "regular_user",
		},
		{
			name:    "email as subject",
			subject: "user@domain.com",
		},
		{
			name:    "username with numbers",
			subject: "user123",
		},
		{
			name:    "username with underscore",
			subject: "under_score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateAccessToken(tt.subject)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.subject, claims.Subject)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(accessTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_RefreshTokenTTL(t *testing.T) {
	accessTTL := 15 * time.Minute
	refreshTTL := 7 * 24 * time.Hour
	maker := NewMaker("test_secret_key", accessTTL, refreshTTL)

	token, err := maker.GenerateRefreshToken("testuser")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, "testuser", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(refreshTTL), claims.ExpiresAt.Time, time.Second)
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey, 15*time.Minute, 7*24*time.Hour)

	validToken, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantError bool
	}{
		{
			name:      "empty token",
			token:     "",
			wantError: true,
		},
		{
			name:      "malformed token",
			token:     "invalid.token.here",
			wantError: true,
		},
		{
			name:      "expired token",
			token:     createExpiredToken(t, secretKey),
			wantError: true,
		},
		{
			name:      "wrong secret key",
			token:     createTokenWithWrongSecret(t),
			wantError: true,
		},
		{
			name:      "tampered token",
			token:     validToken + "tampered",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				assert.False(t, maker.Validate(tt.token))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.True(t, maker.Validate(tt.token))
			}
		})
	}
}

func TestMaker_DifferentSecretKeys(t *testing.T) {
	maker1 := NewMaker("first_secret_key", 15*time.Minute, time.Hour)
	maker2 := NewMaker("different_secret_key", 15*time.Minute, time.Hour)

	token, err := maker1.GenerateAccessToken("testuser")
	require.NoError(t, err)

	claims, err := maker2.ParseToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.False(t, maker2.Validate(token))

	claims, err = maker1.ParseToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.True(t, maker1.Validate(token))
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewMaker(secretKey, -time.Hour, -time.Hour)
	token, err := maker.GenerateAccessToken("testuser")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewMaker("wrong_secret_key", 15*time.Minute, time.Hour)
	token, err := wrongMaker.GenerateAccessToken("testuser")
	require.NoError(t, err)
	return token
}

func TestMaker_TokenExpiration(t *testing.T) {
	secretKey := "test_secret_key"
	maker := NewMaker(secretKey, time.Minute, time.Minute)

	t.Run("token within ttl", func(t *testing.T) {
		token, err := maker.GenerateAccessToken("testuser")
		require.NoError(t, err)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "testuser", claims.Subject)
		assert.True(t, maker.Validate(token))
	})

	t.Run("token past ttl", func(t *testing.T) {
		expired := createExpiredToken(t, secretKey)

		_, err := maker.ParseToken(expired)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
		assert.False(t, maker.Validate(expired))
	})

	// exp усекается до секунды, поэтому при нулевом TTL
	// токен истекает сразу в момент выпуска.
	t.Run("token at exact expiry instant", func(t *testing.T) {
		zeroMaker := NewMaker(secretKey, 0, 0)
		token, err := zeroMaker.GenerateAccessToken("testuser")
		require.NoError(t, err)

		_, err = zeroMaker.ParseToken(token)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expired")
		assert.False(t, zeroMaker.Validate(token))
	})
}
