package sktai

import (
	"context"

	"github.com/axportal/backend/internal/model"
)

// ServingClient wraps the model-serving endpoints.
type ServingClient struct {
	c *Client
}

func NewServingClient(c *Client) *ServingClient {
	return &ServingClient{c: c}
}

func (s *ServingClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.Serving], error) {
	var page model.Page[model.Serving]
	if err := s.c.get(ctx, "/api/v1/servings", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *ServingClient) Get(ctx context.Context, id string) (*model.Serving, error) {
	var serving model.Serving
	if err := s.c.get(ctx, "/api/v1/servings/"+id, nil, &serving); err != nil {
		return nil, err
	}
	return &serving, nil
}

func (s *ServingClient) Create(ctx context.Context, req model.CreateServingRequest) (*model.Serving, error) {
	var serving model.Serving
	if err := s.c.post(ctx, "/api/v1/servings", req, &serving); err != nil {
		return nil, err
	}
	return &serving, nil
}

func (s *ServingClient) Update(ctx context.Context, id string, req model.UpdateServingRequest) (*model.Serving, error) {
	var serving model.Serving
	if err := s.c.put(ctx, "/api/v1/servings/"+id, req, &serving); err != nil {
		return nil, err
	}
	return &serving, nil
}

func (s *ServingClient) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/servings/"+id)
}

func (s *ServingClient) Start(ctx context.Context, id string) error {
	return s.c.post(ctx, "/api/v1/servings/"+id+"/start", nil, nil)
}

func (s *ServingClient) Stop(ctx context.Context, id string) error {
	return s.c.post(ctx, "/api/v1/servings/"+id+"/stop", nil, nil)
}

// Models lists the registry models eligible for serving deployment.
func (s *ServingClient) Models(ctx context.Context) ([]model.RegistryModel, error) {
	var models []model.RegistryModel
	if err := s.c.get(ctx, "/api/v1/servings/models", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}
