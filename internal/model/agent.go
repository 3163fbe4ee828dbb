package model

import (
	"encoding/json"
	"time"
)

type Agent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
	Status      string    `json:"status,omitempty"`
	AppID       string    `json:"app_id,omitempty"`
	ProjectID   string    `json:"project_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type CreateAgentRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type,omitempty"`
	Graph       json.RawMessage `json:"graph,omitempty"`
}

type UpdateAgentRequest struct {
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Graph       json.RawMessage `json:"graph,omitempty"`
}

type AgentDeployment struct {
	ID         string    `json:"id"`
	AgentID    string    `json:"agent_id"`
	Status     string    `json:"status,omitempty"`
	Endpoint   string    `json:"endpoint,omitempty"`
	DeployedAt time.Time `json:"deployed_at,omitempty"`
}

// AgentInvokeRequest is forwarded to the agent gateway as-is, under the
// caller's own API key.
type AgentInvokeRequest struct {
	AppID   string          `json:"app_id" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}
