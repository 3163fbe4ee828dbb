package model

import "time"

type Serving struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ModelID     string    `json:"model_id"`
	ModelName   string    `json:"model_name,omitempty"`
	Status      string    `json:"status,omitempty"`
	Endpoint    string    `json:"endpoint,omitempty"`
	GPUType     string    `json:"gpu_type,omitempty"`
	GPUCount    int       `json:"gpu_count,omitempty"`
	CPURequest  string    `json:"cpu_request,omitempty"`
	MemRequest  string    `json:"mem_request,omitempty"`
	MinReplicas int       `json:"min_replicas,omitempty"`
	MaxReplicas int       `json:"max_replicas,omitempty"`
	ProjectID   string    `json:"project_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

type CreateServingRequest struct {
	Name        string `json:"name" binding:"required"`
	ModelID     string `json:"model_id" binding:"required"`
	GPUType     string `json:"gpu_type,omitempty"`
	GPUCount    int    `json:"gpu_count,omitempty"`
	CPURequest  string `json:"cpu_request,omitempty"`
	MemRequest  string `json:"mem_request,omitempty"`
	MinReplicas int    `json:"min_replicas,omitempty"`
	MaxReplicas int    `json:"max_replicas,omitempty"`
}

type UpdateServingRequest struct {
	GPUCount    int `json:"gpu_count,omitempty"`
	MinReplicas int `json:"min_replicas,omitempty"`
	MaxReplicas int `json:"max_replicas,omitempty"`
}
