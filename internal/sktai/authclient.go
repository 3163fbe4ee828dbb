package sktai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/axportal/backend/internal/config"
	"github.com/axportal/backend/internal/logger"
)

// AuthClient issues the raw login, refresh and exchange calls against the
// platform auth service. It uses its own bare HTTP client; these endpoints
// never carry a managed Authorization header.
type AuthClient struct {
	baseURL            string
	exchangeClientName string
	oauth              *oauth2.Config
	httpClient         *http.Client
	log                *logger.Logger
}

func NewAuthClient(cfg config.SktaiConfig, httpClient *http.Client, log *logger.Logger) *AuthClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	return &AuthClient{
		baseURL:            baseURL,
		exchangeClientName: cfg.ExchangeClientName,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{cfg.Scope},
			Endpoint: oauth2.Endpoint{
				TokenURL:  baseURL + "/api/v1/auth/login",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
		log:        log,
	}
}

// Login performs the password grant against the platform login endpoint.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	tok, err := a.oauth.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("platform login: %w", err)
	}

	res := &TokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
	}
	if !tok.Expiry.IsZero() {
		res.ExpiresIn = int64(time.Until(tok.Expiry).Seconds())
	}
	if extra, ok := tok.Extra("refresh_expires_in").(float64); ok {
		res.RefreshExpiresIn = int64(extra)
	}
	return res, nil
}

// Refresh trades a refresh token for a new token pair.
func (a *AuthClient) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	endpoint := a.baseURL + "/api/v1/auth/token/refresh?refresh_token=" + url.QueryEscape(refreshToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return a.token(req, "token refresh")
}

// Exchange narrows a login token to the user's active project/role group.
func (a *AuthClient) Exchange(ctx context.Context, accessToken string, projectRole ProjectRole) (*TokenResponse, error) {
	query := url.Values{
		"to_exchange_client_name": {a.exchangeClientName},
		"current_group":           {fmt.Sprintf("/P%s_R%s", projectRole.ProjectID, projectRole.RoleID)},
	}
	endpoint := a.baseURL + "/api/v1/auth/token/exchange?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", defaultTokenType+" "+accessToken)
	return a.token(req, "token exchange")
}

func (a *AuthClient) token(req *http.Request, operation string) (*TokenResponse, error) {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s: %w", operation, Translate(resp.StatusCode, body))
	}

	var tok TokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("%s: parse response: %w", operation, err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("%s: response without access token", operation)
	}
	return &tok, nil
}
