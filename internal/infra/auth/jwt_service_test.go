package auth

import (
	"testing"
	"time"

	"souq/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	customerID := uuid.New()
	roles := []string{"customer", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(customerID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token against the access secret
	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, customerID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
	assert.Len(t, claims["roles"], 2)

	// Validate refresh token against the refresh secret
	parsed, err = jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok = parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
	// Refresh tokens carry no roles
	_, hasRoles := claims["roles"]
	assert.False(t, hasRoles)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	// An access token must not validate against the refresh secret.
	_, err = jwtService.ValidateToken(accessToken, cfg.SecretKey.Refresh)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
