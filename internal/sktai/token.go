package sktai

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenType = "Bearer"

// TokenResponse is the upstream auth server's token payload, shared by the
// login, refresh and exchange endpoints.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}

// TokenData is the cached credential state for one platform user.
type TokenData struct {
	Username         string
	AccessToken      string
	RefreshToken     string
	TokenType        string
	IssuedAt         time.Time
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

func NewTokenData(username string, tok *TokenResponse, issuedAt time.Time) *TokenData {
	data := &TokenData{
		Username:     username,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		IssuedAt:     issuedAt,
	}
	if data.TokenType == "" {
		data.TokenType = defaultTokenType
	}
	data.AccessExpiresAt = accessExpiry(tok.AccessToken, issuedAt, tok.ExpiresIn)
	data.RefreshExpiresAt = issuedAt.Add(time.Duration(tok.RefreshExpiresIn) * time.Second)
	return data
}

// Apply overwrites the token state from a refresh response, keeping the prior
// refresh token when the server did not rotate it.
func (t *TokenData) Apply(tok *TokenResponse, issuedAt time.Time) {
	t.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		t.RefreshToken = tok.RefreshToken
	}
	if tok.TokenType != "" {
		t.TokenType = tok.TokenType
	}
	t.IssuedAt = issuedAt
	t.AccessExpiresAt = accessExpiry(tok.AccessToken, issuedAt, tok.ExpiresIn)
	if tok.RefreshExpiresIn > 0 {
		t.RefreshExpiresAt = issuedAt.Add(time.Duration(tok.RefreshExpiresIn) * time.Second)
	}
}

func (t *TokenData) IsValid() bool {
	return t != nil && t.AccessToken != "" && time.Now().Before(t.AccessExpiresAt)
}

func (t *TokenData) IsExpired() bool {
	return !t.IsValid()
}

func (t *TokenData) IsRefreshExpired() bool {
	return t == nil || !time.Now().Before(t.RefreshExpiresAt)
}

// Header renders the Authorization header value.
func (t *TokenData) Header() string {
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}
	return tokenType + " " + t.AccessToken
}

// accessExpiry prefers the exp claim of the access token itself; the server's
// declared expires_in only applies when the token is not a decodable JWT.
func accessExpiry(accessToken string, issuedAt time.Time, expiresIn int64) time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err == nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return issuedAt.Add(time.Duration(expiresIn) * time.Second)
}
