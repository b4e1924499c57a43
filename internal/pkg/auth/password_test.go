package auth

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	p := NewPasswordManager(testConfig())

	hash, err := p.HashPassword("segura123")
	require.NoError(t, err)
	assert.NotEqual(t, "segura123", hash)

	assert.NoError(t, p.VerifyPassword("segura123", hash))
	assert.Error(t, p.VerifyPassword("incorrecta1", hash))
}

func TestValidatePassword(t *testing.T) {
	p := NewPasswordManager(testConfig())

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "segura123", false},
		{"too short", "abc1", true},
		{"no number", "soloLetras", true},
		{"no letter", "12345678", true},
		{"too long", strings.Repeat("a1", 65), true},
		{"exactly minimum length", "abcdefg1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePasswordHonorsConfiguredMinimum(t *testing.T) {
	cfg := testConfig()
	cfg.Security.MinPasswordLength = 12
	p := NewPasswordManager(cfg)

	assert.Error(t, p.ValidatePassword("segura123"))
	assert.NoError(t, p.ValidatePassword("muysegura1234"))
}

func TestGenerateTemporaryPassword(t *testing.T) {
	p := NewPasswordManager(testConfig())

	pw, err := p.GenerateTemporaryPassword()
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	// Must satisfy the validator it was generated for
	assert.NoError(t, p.ValidatePassword(pw))

	var hasLetter, hasNumber bool
	for _, r := range pw {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsNumber(r) {
			hasNumber = true
		}
	}
	assert.True(t, hasLetter)
	assert.True(t, hasNumber)
}
