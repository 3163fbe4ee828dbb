package sktai

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/axportal/backend/internal/logger"
)

// Credentials are the stored platform login credentials for a portal user.
type Credentials struct {
	Username string
	Password string
}

// ProjectRole is the active project/role pairing a login token is exchanged
// into.
type ProjectRole struct {
	ProjectID string
	RoleID    string
}

// CredentialSource resolves a username to stored platform credentials and to
// its active project/role. Only consulted on the login path.
type CredentialSource interface {
	PlatformCredentials(ctx context.Context, username string) (*Credentials, error)
	ActiveProjectRole(ctx context.Context, username string) (*ProjectRole, error)
}

// TokenManager produces Authorization header values for platform calls:
// reuse a valid cached token, refresh an expired-but-refreshable one, or run
// a full login plus exchange. Refresh and login collapse concurrent callers
// per username into a single network round trip.
type TokenManager struct {
	store         TokenStore
	auth          *AuthClient
	creds         CredentialSource
	adminUsername string
	log           *logger.Logger

	refreshGroup singleflight.Group
	loginGroup   singleflight.Group
}

func NewTokenManager(store TokenStore, auth *AuthClient, creds CredentialSource, adminUsername string, log *logger.Logger) *TokenManager {
	return &TokenManager{
		store:         store,
		auth:          auth,
		creds:         creds,
		adminUsername: adminUsername,
		log:           log,
	}
}

// AuthorizationHeader returns a header value for the given username, or
// ("", false) when none could be obtained. Ordinary failures are absorbed
// here; the request then goes out unauthenticated and the upstream 401 path
// takes over.
func (m *TokenManager) AuthorizationHeader(ctx context.Context, username string) (string, bool) {
	if username == "" {
		return "", false
	}

	cached, ok := m.store.Get(username)
	if ok && cached.IsValid() {
		return cached.Header(), true
	}

	if ok && !cached.IsRefreshExpired() {
		header, err := m.refresh(ctx, username)
		if err != nil {
			m.log.Warn("token refresh failed", "username", username, "error", err)
			return "", false
		}
		return header, true
	}

	header, err := m.login(ctx, username)
	if err != nil {
		m.log.Warn("platform login failed", "username", username, "error", err)
		return "", false
	}
	return header, true
}

// Evict drops the cached token for a username. Called on upstream 401 and on
// portal logout.
func (m *TokenManager) Evict(username string) {
	if username == "" {
		return
	}
	m.store.Evict(username)
}

func (m *TokenManager) refresh(ctx context.Context, username string) (string, error) {
	header, err, _ := m.refreshGroup.Do(username, func() (any, error) {
		// Another caller may have just refreshed.
		current, ok := m.store.Get(username)
		if !ok {
			return "", errors.New("token evicted before refresh")
		}
		if current.IsValid() {
			return current.Header(), nil
		}

		tok, err := m.auth.Refresh(ctx, current.RefreshToken)
		if err != nil {
			return "", &APIError{Kind: KindRefreshFailed, Message: "token refresh failed", Detail: err.Error()}
		}

		current.Apply(tok, time.Now())
		m.store.Put(current)
		m.log.Debug("token refreshed", "username", username)
		return current.Header(), nil
	})
	if err != nil {
		return "", err
	}
	return header.(string), nil
}

func (m *TokenManager) login(ctx context.Context, username string) (string, error) {
	header, err, _ := m.loginGroup.Do(username, func() (any, error) {
		// Another caller may have just logged in.
		if current, ok := m.store.Get(username); ok && current.IsValid() {
			return current.Header(), nil
		}

		creds, err := m.creds.PlatformCredentials(ctx, username)
		if err != nil {
			return "", &APIError{Kind: KindLoginFailed, Message: "credential lookup failed", Detail: err.Error()}
		}

		tok, err := m.auth.Login(ctx, creds.Username, creds.Password)
		if err != nil {
			return "", &APIError{Kind: KindLoginFailed, Message: "platform login failed", Detail: err.Error()}
		}

		// The admin account skips the exchange and keeps its login token.
		if username != m.adminUsername {
			projectRole, err := m.creds.ActiveProjectRole(ctx, username)
			if err != nil {
				return "", &APIError{Kind: KindLoginFailed, Message: "project role lookup failed", Detail: err.Error()}
			}
			tok, err = m.auth.Exchange(ctx, tok.AccessToken, *projectRole)
			if err != nil {
				return "", &APIError{Kind: KindLoginFailed, Message: "token exchange failed", Detail: err.Error()}
			}
		}

		data := NewTokenData(username, tok, time.Now())
		m.store.Put(data)
		m.log.Info("platform login completed", "username", username)
		return data.Header(), nil
	})
	if err != nil {
		return "", err
	}
	return header.(string), nil
}
