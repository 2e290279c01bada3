package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncromed/syncromed-api/internal/config"
	"github.com/syncromed/syncromed-api/internal/domain"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
		Issuer:         "syncromed-api",
	}
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	in := &domain.Claims{
		UserID:   "doc1",
		Name:     "Dr. Gregory House",
		Username: "house",
		Email:    "house@syncromed.ai",
		Role:     domain.RoleDoctor,
	}

	token, expiresAt, err := m.Generate(in)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	out, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(testJWTConfig())
	token, _, err := m.Generate(&domain.Claims{UserID: "pat1", Role: domain.RolePatient})
	require.NoError(t, err)

	other := NewJWTManager(config.JWTConfig{
		Secret: "another-secret", AccessTokenTTL: time.Hour, Issuer: "syncromed-api",
	})
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	other := NewJWTManager(config.JWTConfig{
		Secret: "test-secret", AccessTokenTTL: time.Hour, Issuer: "someone-else",
	})
	token, _, err := other.Generate(&domain.Claims{UserID: "pat1", Role: domain.RolePatient})
	require.NoError(t, err)

	m := NewJWTManager(testJWTConfig())
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager(config.JWTConfig{
		Secret: "test-secret", AccessTokenTTL: -time.Hour, Issuer: "syncromed-api",
	})
	token, _, err := m.Generate(&domain.Claims{UserID: "pat1", Role: domain.RolePatient})
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewJWTManager(testJWTConfig())
	_, err := m.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
