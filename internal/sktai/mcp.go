package sktai

import (
	"context"

	"github.com/axportal/backend/internal/model"
)

// MCPClient wraps the MCP catalog endpoints.
type MCPClient struct {
	c *Client
}

func NewMCPClient(c *Client) *MCPClient {
	return &MCPClient{c: c}
}

func (m *MCPClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.MCPServer], error) {
	var page model.Page[model.MCPServer]
	if err := m.c.get(ctx, "/api/v1/mcp/servers", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (m *MCPClient) Get(ctx context.Context, id string) (*model.MCPServer, error) {
	var server model.MCPServer
	if err := m.c.get(ctx, "/api/v1/mcp/servers/"+id, nil, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (m *MCPClient) Register(ctx context.Context, req model.RegisterMCPServerRequest) (*model.MCPServer, error) {
	var server model.MCPServer
	if err := m.c.post(ctx, "/api/v1/mcp/servers", req, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (m *MCPClient) Update(ctx context.Context, id string, req model.UpdateMCPServerRequest) (*model.MCPServer, error) {
	var server model.MCPServer
	if err := m.c.put(ctx, "/api/v1/mcp/servers/"+id, req, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (m *MCPClient) Delete(ctx context.Context, id string) error {
	return m.c.delete(ctx, "/api/v1/mcp/servers/"+id)
}

func (m *MCPClient) Tools(ctx context.Context, id string) ([]model.MCPTool, error) {
	var tools []model.MCPTool
	if err := m.c.get(ctx, "/api/v1/mcp/servers/"+id+"/tools", nil, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}
