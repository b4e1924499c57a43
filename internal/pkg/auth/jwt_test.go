package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/distribuidora-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "distribuidora-backend"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-for-unit-tests",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost:        bcryptMinCostForTests,
			MinPasswordLength: 8,
		},
	}
}

// bcrypt.MinCost keeps hashing fast in tests
const bcryptMinCostForTests = 4

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateAccessToken(42, "cliente@distribuidora.local", "cliente")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "cliente@distribuidora.local", claims.Email)
	assert.Equal(t, "cliente", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenCarriesNoRole(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateRefreshToken(42, "cliente@distribuidora.local")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Empty(t, claims.Role)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewJWTManager(testConfig())

	access, err := m.GenerateAccessToken(1, "a@b.c", "admin")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken(1, "a@b.c")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig())
	token, err := m.GenerateAccessToken(1, "a@b.c", "admin")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "a-different-secret"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewJWTManager(testConfig())
	_, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("abc.def.ghi"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
