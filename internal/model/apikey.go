package model

import "time"

type APIKey struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key,omitempty"`
	ProjectID string    `json:"project_id,omitempty"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type CreateAPIKeyRequest struct {
	Name      string `json:"name" binding:"required"`
	ProjectID string `json:"project_id,omitempty"`
	TTLDays   int    `json:"ttl_days,omitempty"`
}
