package model

import "time"

type SafetyFilter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Action    string    `json:"action,omitempty"`
	Enabled   bool      `json:"enabled"`
	Keywords  []string  `json:"keywords,omitempty"`
	ProjectID string    `json:"project_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type CreateSafetyFilterRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category,omitempty"`
	Action   string   `json:"action,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type UpdateSafetyFilterRequest struct {
	Action   string   `json:"action,omitempty"`
	Enabled  *bool    `json:"enabled,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type SafetyCategory struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
