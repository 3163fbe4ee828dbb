package service

import (
	"context"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type MCPService struct {
	mcp *sktai.MCPClient
}

func NewMCPService(mcp *sktai.MCPClient) *MCPService {
	return &MCPService{mcp: mcp}
}

func (s *MCPService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.MCPServer], error) {
	return s.mcp.List(ctx, query)
}

func (s *MCPService) Get(ctx context.Context, id string) (*model.MCPServer, error) {
	return s.mcp.Get(ctx, id)
}

func (s *MCPService) Register(ctx context.Context, req model.RegisterMCPServerRequest) (*model.MCPServer, error) {
	return s.mcp.Register(ctx, req)
}

func (s *MCPService) Update(ctx context.Context, id string, req model.UpdateMCPServerRequest) (*model.MCPServer, error) {
	return s.mcp.Update(ctx, id, req)
}

func (s *MCPService) Delete(ctx context.Context, id string) error {
	return s.mcp.Delete(ctx, id)
}

func (s *MCPService) Tools(ctx context.Context, id string) ([]model.MCPTool, error) {
	return s.mcp.Tools(ctx, id)
}
