package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type AgentService struct {
	agents *sktai.AgentClient
}

func NewAgentService(agents *sktai.AgentClient) *AgentService {
	return &AgentService{agents: agents}
}

func (s *AgentService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.Agent], error) {
	return s.agents.List(ctx, query)
}

func (s *AgentService) Get(ctx context.Context, id string) (*model.Agent, error) {
	return s.agents.Get(ctx, id)
}

func (s *AgentService) Create(ctx context.Context, req model.CreateAgentRequest) (*model.Agent, error) {
	return s.agents.Create(ctx, req)
}

func (s *AgentService) Update(ctx context.Context, id string, req model.UpdateAgentRequest) (*model.Agent, error) {
	return s.agents.Update(ctx, id, req)
}

func (s *AgentService) Delete(ctx context.Context, id string) error {
	return s.agents.Delete(ctx, id)
}

func (s *AgentService) Deploy(ctx context.Context, id string) (*model.AgentDeployment, error) {
	return s.agents.Deploy(ctx, id)
}

// Invoke forwards to the agent gateway under the caller-supplied API key.
func (s *AgentService) Invoke(ctx context.Context, appID, apiKey string, payload json.RawMessage) (json.RawMessage, error) {
	return s.agents.Invoke(ctx, appID, apiKey, payload)
}

func (s *AgentService) TestStream(ctx context.Context, id, input, filename string, file io.Reader) (json.RawMessage, error) {
	return s.agents.TestStream(ctx, id, input, filename, file)
}
