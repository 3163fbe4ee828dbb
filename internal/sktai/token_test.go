package sktai

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedAccessToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestNewTokenDataPrefersJWTExpClaim(t *testing.T) {
	issuedAt := time.Now()
	exp := issuedAt.Add(15 * time.Minute)

	data := NewTokenData("alice", &TokenResponse{
		AccessToken: signedAccessToken(t, exp),
		// Deliberately contradicts the exp claim; the claim must win.
		ExpiresIn:        60,
		RefreshToken:     "r1",
		RefreshExpiresIn: 3600,
	}, issuedAt)

	assert.Equal(t, exp.Unix(), data.AccessExpiresAt.Unix())
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), data.RefreshExpiresAt.Unix())
}

func TestNewTokenDataFallsBackToExpiresIn(t *testing.T) {
	issuedAt := time.Now()

	data := NewTokenData("alice", &TokenResponse{
		AccessToken: "opaque-token",
		ExpiresIn:   600,
	}, issuedAt)

	assert.Equal(t, issuedAt.Add(10*time.Minute).Unix(), data.AccessExpiresAt.Unix())
}

func TestNewTokenDataDefaultsTokenType(t *testing.T) {
	data := NewTokenData("alice", &TokenResponse{AccessToken: "a", ExpiresIn: 60}, time.Now())
	assert.Equal(t, "Bearer", data.TokenType)
	assert.Equal(t, "Bearer a", data.Header())
}

func TestApplyKeepsRefreshTokenWhenNotRotated(t *testing.T) {
	issuedAt := time.Now()
	data := NewTokenData("alice", &TokenResponse{
		AccessToken:      "a1",
		RefreshToken:     "r1",
		ExpiresIn:        60,
		RefreshExpiresIn: 3600,
	}, issuedAt)
	originalRefreshExpiry := data.RefreshExpiresAt

	data.Apply(&TokenResponse{AccessToken: "a2", ExpiresIn: 60}, issuedAt.Add(time.Minute))

	assert.Equal(t, "a2", data.AccessToken)
	assert.Equal(t, "r1", data.RefreshToken)
	assert.Equal(t, originalRefreshExpiry, data.RefreshExpiresAt)
}

func TestApplyRotatesRefreshToken(t *testing.T) {
	issuedAt := time.Now()
	data := NewTokenData("alice", &TokenResponse{
		AccessToken:      "a1",
		RefreshToken:     "r1",
		ExpiresIn:        60,
		RefreshExpiresIn: 3600,
	}, issuedAt)

	later := issuedAt.Add(time.Minute)
	data.Apply(&TokenResponse{
		AccessToken:      "a2",
		RefreshToken:     "r2",
		ExpiresIn:        60,
		RefreshExpiresIn: 7200,
	}, later)

	assert.Equal(t, "r2", data.RefreshToken)
	assert.Equal(t, later.Add(2*time.Hour).Unix(), data.RefreshExpiresAt.Unix())
}

func TestTokenValidity(t *testing.T) {
	now := time.Now()

	valid := &TokenData{AccessToken: "a", AccessExpiresAt: now.Add(time.Minute), RefreshExpiresAt: now.Add(time.Hour)}
	assert.True(t, valid.IsValid())
	assert.False(t, valid.IsExpired())
	assert.False(t, valid.IsRefreshExpired())

	stale := &TokenData{AccessToken: "a", AccessExpiresAt: now.Add(-time.Minute), RefreshExpiresAt: now.Add(time.Hour)}
	assert.False(t, stale.IsValid())
	assert.False(t, stale.IsRefreshExpired())

	dead := &TokenData{AccessToken: "a", AccessExpiresAt: now.Add(-time.Hour), RefreshExpiresAt: now.Add(-time.Minute)}
	assert.True(t, dead.IsExpired())
	assert.True(t, dead.IsRefreshExpired())

	var nilData *TokenData
	assert.False(t, nilData.IsValid())
	assert.True(t, nilData.IsRefreshExpired())
}
