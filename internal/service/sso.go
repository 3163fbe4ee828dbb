package service

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/axportal/backend/internal/config"
)

// SSOService verifies ID tokens from an external OIDC provider and maps them
// to existing portal users. Disabled unless OIDC_ISSUER is configured.
type SSOService struct {
	verifier *oidc.IDTokenVerifier
	auth     *AuthService
}

func NewSSOService(ctx context.Context, cfg config.AuthConfig, auth *AuthService) (*SSOService, error) {
	if cfg.OIDCIssuer == "" {
		return &SSOService{auth: auth}, nil
	}
	if cfg.OIDCClientID == "" {
		return nil, fmt.Errorf("%w: OIDC_CLIENT_ID is required with OIDC_ISSUER", ErrMisconfigured)
	}

	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}

	return &SSOService{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		auth:     auth,
	}, nil
}

func (s *SSOService) Enabled() bool {
	return s.verifier != nil
}

// Login verifies a provider ID token and issues portal tokens for the
// matching user. SSO never auto-provisions accounts.
func (s *SSOService) Login(ctx context.Context, rawIDToken string) (string, string, int64, error) {
	if s.verifier == nil {
		return "", "", 0, ErrForbidden
	}

	idToken, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", "", 0, ErrUnauthorized
	}

	var claims struct {
		PreferredUsername string `json:"preferred_username"`
		Email             string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", "", 0, ErrUnauthorized
	}

	username := claims.PreferredUsername
	if username == "" {
		username = claims.Email
	}
	if username == "" {
		return "", "", 0, ErrUnauthorized
	}

	return s.auth.TokensForUser(ctx, username)
}
