package sktai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axportal/backend/internal/logger"
)

func newTestClient(t *testing.T, p *fakePlatform) (*Client, *MemoryTokenStore) {
	t.Helper()
	manager, store := newTestManager(t, p)
	return NewClient(p.config(), p.srv.Client(), manager, logger.Nop()), store
}

func putValidAdminToken(store *MemoryTokenStore, accessToken string) {
	store.Put(&TokenData{
		Username:         "admin",
		AccessToken:      accessToken,
		TokenType:        "Bearer",
		AccessExpiresAt:  time.Now().Add(time.Minute),
		RefreshExpiresAt: time.Now().Add(time.Hour),
	})
}

func TestCallRetriesOnceAfterStaleToken(t *testing.T) {
	var attempts atomic.Int32
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		if r.Header.Get("Authorization") != "Bearer login-admin" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"token expired"}`))
			return
		}
		writeToken(w, map[string]any{"data": []any{}, "pagination": map[string]any{"page": 1}})
	})
	client, store := newTestClient(t, platform)
	putValidAdminToken(store, "stale")

	var out map[string]any
	err := client.get(context.Background(), "/api/v1/datasets", nil, &out)

	require.NoError(t, err)
	assert.EqualValues(t, 2, attempts.Load())
	assert.EqualValues(t, 1, platform.logins.Load())
	assert.Contains(t, out, "data")
}

func TestCallEvictsTokenOnTerminalUnauthorized(t *testing.T) {
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"account disabled"}`))
	})
	client, store := newTestClient(t, platform)
	putValidAdminToken(store, "stale")

	err := client.get(context.Background(), "/api/v1/datasets", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnauthorized, apiErr.Kind)
	assert.Equal(t, "account disabled", apiErr.Detail)

	_, found := store.Get("admin")
	assert.False(t, found)
}

func TestCallTranslatesUpstreamErrors(t *testing.T) {
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"no such dataset"}`))
	})
	client, store := newTestClient(t, platform)
	putValidAdminToken(store, "good")

	err := client.get(context.Background(), "/api/v1/datasets/d-404", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "no such dataset", apiErr.Detail)
}

func TestCallSendsQueryAndJSONContentType(t *testing.T) {
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer good", r.Header.Get("Authorization"))
		writeToken(w, map[string]any{"data": []any{}})
	})
	client, store := newTestClient(t, platform)
	putValidAdminToken(store, "good")

	query := url.Values{"page": {"2"}}
	err := client.get(context.Background(), "/api/v1/datasets", query, nil)
	require.NoError(t, err)
}

func TestUploadKeepsMultipartContentType(t *testing.T) {
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "training", r.FormValue("kind"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "sample.csv", header.Filename)
		assert.Equal(t, "a,b\n1,2\n", string(content))

		writeToken(w, map[string]any{"id": "f-1"})
	})
	client, store := newTestClient(t, platform)
	putValidAdminToken(store, "good")

	var out struct {
		ID string `json:"id"`
	}
	err := client.upload(context.Background(), "/api/v1/datasets/upload/files",
		map[string]string{"kind": "training"}, "file", "sample.csv",
		strings.NewReader("a,b\n1,2\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "f-1", out.ID)
}

func TestPassthroughForwardsCallerBearer(t *testing.T) {
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer api-key-1", r.Header.Get("Authorization"))
		writeToken(w, map[string]any{"answer": "ok"})
	})
	client, _ := newTestClient(t, platform)

	var out map[string]any
	err := client.call(context.Background(), http.MethodPost, "/api/v1/agent_gateway/app-1/invoke",
		callOptions{rawBody: []byte(`{"input":"hi"}`), bearer: "api-key-1"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out["answer"])
	assert.Zero(t, platform.logins.Load())
}

func TestCallUsesContextUsernameForEviction(t *testing.T) {
	platform := newFakePlatform(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer exchanged-alice" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"token expired"}`))
			return
		}
		writeToken(w, map[string]any{"data": []any{}})
	})
	client, store := newTestClient(t, platform)
	store.Put(&TokenData{
		Username:         "alice",
		AccessToken:      "stale",
		TokenType:        "Bearer",
		AccessExpiresAt:  time.Now().Add(time.Minute),
		RefreshExpiresAt: time.Now().Add(time.Hour),
	})
	putValidAdminToken(store, "admin-token")

	ctx := WithUsername(context.Background(), "alice")
	err := client.get(ctx, "/api/v1/datasets", nil, nil)
	require.NoError(t, err)

	// Only alice's entry was evicted and re-issued; admin's stayed put.
	admin, found := store.Get("admin")
	require.True(t, found)
	assert.Equal(t, "admin-token", admin.AccessToken)
	assert.EqualValues(t, 1, platform.logins.Load())
	assert.EqualValues(t, 1, platform.exchanges.Load())
}

func TestCallReturnsNetworkErrorAfterRetries(t *testing.T) {
	platform := newFakePlatform(t, nil)
	client, store := newTestClient(t, platform)
	putValidAdminToken(store, "good")
	platform.srv.Close()

	err := client.get(context.Background(), "/api/v1/datasets", nil, nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "upstream request failed")
}
