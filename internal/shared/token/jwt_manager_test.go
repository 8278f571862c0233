package token_test

import (
	"testing"
	"time"

	"github.com/changhyeonkim/business-review/go-api-server/internal/config"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(expiry time.Duration) *token.JWTManager {
	return token.NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "business-review-api-test"},
		JWT: config.JWTConfig{
			Secret: "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry: expiry,
		},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	// Given: A manager with a normal expiry
	manager := newTestManager(time.Hour)

	// When: A token is generated and validated
	tokenString, err := manager.GenerateToken("1", "moe")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.ValidateToken(tokenString)
	require.NoError(t, err)

	// Then: Claims carry the member identity
	assert.Equal(t, "1", claims.MemberID)
	assert.Equal(t, "moe", claims.Username)
}

func TestValidateToken_Malformed(t *testing.T) {
	manager := newTestManager(time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	// Given: A manager whose tokens are already expired
	manager := newTestManager(-time.Minute)

	tokenString, err := manager.GenerateToken("1", "moe")
	require.NoError(t, err)

	// When/Then: Validation reports expiry
	_, err = manager.ValidateToken(tokenString)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := newTestManager(time.Hour)
	other := token.NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "business-review-api-test"},
		JWT: config.JWTConfig{
			Secret: "another-secret-key-that-is-also-32-characters-min",
			Expiry: time.Hour,
		},
	})

	tokenString, err := manager.GenerateToken("1", "moe")
	require.NoError(t, err)

	_, err = other.ValidateToken(tokenString)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
