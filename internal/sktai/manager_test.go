package sktai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axportal/backend/internal/config"
	"github.com/axportal/backend/internal/logger"
)

// fakePlatform emulates the platform auth service plus optional resource
// endpoints, counting every auth round trip.
type fakePlatform struct {
	srv       *httptest.Server
	logins    atomic.Int32
	refreshes atomic.Int32
	exchanges atomic.Int32
}

func newFakePlatform(t *testing.T, resource http.HandlerFunc) *fakePlatform {
	t.Helper()
	p := &fakePlatform{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		p.logins.Add(1)
		username := r.PostFormValue("username")
		writeToken(w, map[string]any{
			"access_token":       "login-" + username,
			"refresh_token":      "refresh-" + username,
			"token_type":         "Bearer",
			"expires_in":         3600,
			"refresh_expires_in": 86400,
		})
	})
	mux.HandleFunc("/api/v1/auth/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		p.refreshes.Add(1)
		writeToken(w, map[string]any{
			"access_token":       "refreshed",
			"refresh_token":      "refresh-rotated",
			"token_type":         "Bearer",
			"expires_in":         3600,
			"refresh_expires_in": 86400,
		})
	})
	mux.HandleFunc("/api/v1/auth/token/exchange", func(w http.ResponseWriter, r *http.Request) {
		p.exchanges.Add(1)
		username := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer login-")
		writeToken(w, map[string]any{
			"access_token": "exchanged-" + username,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	if resource != nil {
		mux.HandleFunc("/", resource)
	}

	p.srv = httptest.NewServer(mux)
	t.Cleanup(p.srv.Close)
	return p
}

func writeToken(w http.ResponseWriter, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func (p *fakePlatform) config() config.SktaiConfig {
	return config.SktaiConfig{
		BaseURL:            p.srv.URL,
		ClientID:           "axportal",
		ClientSecret:       "secret",
		Scope:              "openid",
		ExchangeClientName: "axportal-client",
		AdminUsername:      "admin",
		ConnectTimeout:     time.Second,
		ReadTimeout:        5 * time.Second,
		RetryBackoff:       time.Millisecond,
	}
}

type fakeCredentialSource struct{}

func (fakeCredentialSource) PlatformCredentials(_ context.Context, username string) (*Credentials, error) {
	return &Credentials{Username: username, Password: "pw-" + username}, nil
}

func (fakeCredentialSource) ActiveProjectRole(_ context.Context, _ string) (*ProjectRole, error) {
	return &ProjectRole{ProjectID: "p1", RoleID: "r2"}, nil
}

func newTestManager(t *testing.T, p *fakePlatform) (*TokenManager, *MemoryTokenStore) {
	t.Helper()
	cfg := p.config()
	store := NewMemoryTokenStore()
	auth := NewAuthClient(cfg, p.srv.Client(), logger.Nop())
	return NewTokenManager(store, auth, fakeCredentialSource{}, cfg.AdminUsername, logger.Nop()), store
}

func TestAuthorizationHeaderReusesValidToken(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, store := newTestManager(t, platform)

	store.Put(&TokenData{
		Username:         "alice",
		AccessToken:      "cached",
		TokenType:        "Bearer",
		AccessExpiresAt:  time.Now().Add(time.Minute),
		RefreshExpiresAt: time.Now().Add(time.Hour),
	})

	header, ok := manager.AuthorizationHeader(context.Background(), "alice")
	require.True(t, ok)
	assert.Equal(t, "Bearer cached", header)
	assert.Zero(t, platform.logins.Load())
	assert.Zero(t, platform.refreshes.Load())
	assert.Zero(t, platform.exchanges.Load())
}

func TestAuthorizationHeaderLogsInAndExchanges(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, store := newTestManager(t, platform)

	header, ok := manager.AuthorizationHeader(context.Background(), "alice")
	require.True(t, ok)
	assert.Equal(t, "Bearer exchanged-alice", header)
	assert.EqualValues(t, 1, platform.logins.Load())
	assert.EqualValues(t, 1, platform.exchanges.Load())

	cached, found := store.Get("alice")
	require.True(t, found)
	assert.True(t, cached.IsValid())
}

func TestAdminLoginSkipsExchange(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, _ := newTestManager(t, platform)

	header, ok := manager.AuthorizationHeader(context.Background(), "admin")
	require.True(t, ok)
	assert.Equal(t, "Bearer login-admin", header)
	assert.EqualValues(t, 1, platform.logins.Load())
	assert.Zero(t, platform.exchanges.Load())
}

func TestConcurrentRefreshCollapsesToOneCall(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, store := newTestManager(t, platform)

	store.Put(&TokenData{
		Username:         "alice",
		AccessToken:      "stale",
		RefreshToken:     "refresh-alice",
		TokenType:        "Bearer",
		AccessExpiresAt:  time.Now().Add(-time.Minute),
		RefreshExpiresAt: time.Now().Add(time.Hour),
	})

	const workers = 20
	var wg sync.WaitGroup
	headers := make([]string, workers)
	oks := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			headers[i], oks[i] = manager.AuthorizationHeader(context.Background(), "alice")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.True(t, oks[i])
		assert.Equal(t, "Bearer refreshed", headers[i])
	}
	assert.EqualValues(t, 1, platform.refreshes.Load())
	assert.Zero(t, platform.logins.Load())
}

func TestExpiredRefreshFallsBackToLogin(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, store := newTestManager(t, platform)

	store.Put(&TokenData{
		Username:         "alice",
		AccessToken:      "stale",
		RefreshToken:     "refresh-alice",
		TokenType:        "Bearer",
		AccessExpiresAt:  time.Now().Add(-time.Hour),
		RefreshExpiresAt: time.Now().Add(-time.Minute),
	})

	header, ok := manager.AuthorizationHeader(context.Background(), "alice")
	require.True(t, ok)
	assert.Equal(t, "Bearer exchanged-alice", header)
	assert.Zero(t, platform.refreshes.Load())
	assert.EqualValues(t, 1, platform.logins.Load())
}

func TestAuthorizationHeaderRequiresUsername(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, _ := newTestManager(t, platform)

	header, ok := manager.AuthorizationHeader(context.Background(), "")
	assert.False(t, ok)
	assert.Empty(t, header)
	assert.Zero(t, platform.logins.Load())
}

func TestEvictDropsCachedToken(t *testing.T) {
	platform := newFakePlatform(t, nil)
	manager, store := newTestManager(t, platform)

	store.Put(&TokenData{
		Username:        "alice",
		AccessToken:     "cached",
		AccessExpiresAt: time.Now().Add(time.Minute),
	})
	manager.Evict("alice")

	_, found := store.Get("alice")
	assert.False(t, found)
}
