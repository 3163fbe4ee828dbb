package sktai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/axportal/backend/internal/model"
)

// AgentClient wraps the agent-builder endpoints plus the agent gateway.
type AgentClient struct {
	c *Client
}

func NewAgentClient(c *Client) *AgentClient {
	return &AgentClient{c: c}
}

func (a *AgentClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.Agent], error) {
	var page model.Page[model.Agent]
	if err := a.c.get(ctx, "/api/v1/agents", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *AgentClient) Get(ctx context.Context, id string) (*model.Agent, error) {
	var agent model.Agent
	if err := a.c.get(ctx, "/api/v1/agents/"+id, nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (a *AgentClient) Create(ctx context.Context, req model.CreateAgentRequest) (*model.Agent, error) {
	var agent model.Agent
	if err := a.c.post(ctx, "/api/v1/agents", req, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (a *AgentClient) Update(ctx context.Context, id string, req model.UpdateAgentRequest) (*model.Agent, error) {
	var agent model.Agent
	if err := a.c.put(ctx, "/api/v1/agents/"+id, req, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (a *AgentClient) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/api/v1/agents/"+id)
}

func (a *AgentClient) Deploy(ctx context.Context, id string) (*model.AgentDeployment, error) {
	var deployment model.AgentDeployment
	if err := a.c.post(ctx, "/api/v1/agents/"+id+"/deploy", nil, &deployment); err != nil {
		return nil, err
	}
	return &deployment, nil
}

// Invoke forwards a request to a deployed agent through the gateway. The
// route is a passthrough: the caller's API key is sent as the bearer and no
// managed token is attached.
func (a *AgentClient) Invoke(ctx context.Context, appID, apiKey string, payload json.RawMessage) (json.RawMessage, error) {
	var result json.RawMessage
	err := a.c.call(ctx, http.MethodPost, "/api/v1/agent_gateway/"+appID+"/invoke", callOptions{
		rawBody: payload,
		bearer:  apiKey,
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TestStream exercises an agent against an attached input file before
// deployment. Multipart endpoint; the response is aggregated upstream output.
func (a *AgentClient) TestStream(ctx context.Context, id, input, filename string, file io.Reader) (json.RawMessage, error) {
	fields := map[string]string{"agent_id": id, "input": input}
	var result json.RawMessage
	if err := a.c.upload(ctx, "/api/v1/agents/test/stream", fields, "file", filename, file, &result); err != nil {
		return nil, err
	}
	return result, nil
}
