package model

import (
	"encoding/json"
	"time"
)

type MCPServer struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	TransportType string    `json:"transport_type,omitempty"`
	URL           string    `json:"url,omitempty"`
	Status        string    `json:"status,omitempty"`
	ProjectID     string    `json:"project_id,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

type RegisterMCPServerRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description,omitempty"`
	TransportType string `json:"transport_type,omitempty"`
	URL           string `json:"url" binding:"required"`
}

type UpdateMCPServerRequest struct {
	Description   string `json:"description,omitempty"`
	TransportType string `json:"transport_type,omitempty"`
	URL           string `json:"url,omitempty"`
}

type MCPTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"input_schema,omitempty"`
}
