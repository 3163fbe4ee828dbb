package model

import "time"

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type AuthConfigResponse struct {
	AllowSignup bool `json:"allowSignup"`
	SSOEnabled  bool `json:"ssoEnabled"`
}

type AuthLogoutResponse struct {
	Status string `json:"status"`
}

type AuthMeResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

type SSOLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type ProjectAssignRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	RoleID    string `json:"roleId" binding:"required"`
}

type AuthUser struct {
	ID       int64
	Username string
}

type User struct {
	ID               int64
	Username         string
	PasswordHash     string
	PlatformUsername string
	PlatformPassword string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RefreshToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
