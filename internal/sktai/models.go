package sktai

import (
	"context"

	"github.com/axportal/backend/internal/model"
)

// ModelClient wraps the model-registry endpoints.
type ModelClient struct {
	c *Client
}

func NewModelClient(c *Client) *ModelClient {
	return &ModelClient{c: c}
}

func (m *ModelClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.RegistryModel], error) {
	var page model.Page[model.RegistryModel]
	if err := m.c.get(ctx, "/api/v1/models", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (m *ModelClient) Get(ctx context.Context, id string) (*model.RegistryModel, error) {
	var registered model.RegistryModel
	if err := m.c.get(ctx, "/api/v1/models/"+id, nil, &registered); err != nil {
		return nil, err
	}
	return &registered, nil
}

func (m *ModelClient) Register(ctx context.Context, req model.RegisterModelRequest) (*model.RegistryModel, error) {
	var registered model.RegistryModel
	if err := m.c.post(ctx, "/api/v1/models", req, &registered); err != nil {
		return nil, err
	}
	return &registered, nil
}

func (m *ModelClient) Update(ctx context.Context, id string, req model.UpdateModelRequest) (*model.RegistryModel, error) {
	var updated model.RegistryModel
	if err := m.c.put(ctx, "/api/v1/models/"+id, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *ModelClient) Delete(ctx context.Context, id string) error {
	return m.c.delete(ctx, "/api/v1/models/"+id)
}

func (m *ModelClient) Providers(ctx context.Context) ([]model.ModelProvider, error) {
	var providers []model.ModelProvider
	if err := m.c.get(ctx, "/api/v1/models/providers", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (m *ModelClient) Types(ctx context.Context) ([]string, error) {
	var types []string
	if err := m.c.get(ctx, "/api/v1/models/types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}
