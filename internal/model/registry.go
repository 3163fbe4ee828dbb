package model

import "time"

type RegistryModel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	Type        string    `json:"type,omitempty"`
	Version     string    `json:"version,omitempty"`
	ServingType string    `json:"serving_type,omitempty"`
	Status      string    `json:"status,omitempty"`
	IsPrivate   bool      `json:"is_private,omitempty"`
	ProjectID   string    `json:"project_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type RegisterModelRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Type        string `json:"type,omitempty"`
	Version     string `json:"version,omitempty"`
	ServingType string `json:"serving_type,omitempty"`
	IsPrivate   bool   `json:"is_private,omitempty"`
}

type UpdateModelRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Status      string `json:"status,omitempty"`
}

type ModelProvider struct {
	Name   string   `json:"name"`
	Models []string `json:"models,omitempty"`
}
