package sktai

import (
	"context"

	"github.com/axportal/backend/internal/model"
)

// SafetyClient wraps the safety-filter endpoints.
type SafetyClient struct {
	c *Client
}

func NewSafetyClient(c *Client) *SafetyClient {
	return &SafetyClient{c: c}
}

func (s *SafetyClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.SafetyFilter], error) {
	var page model.Page[model.SafetyFilter]
	if err := s.c.get(ctx, "/api/v1/safety/filters", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *SafetyClient) Get(ctx context.Context, id string) (*model.SafetyFilter, error) {
	var filter model.SafetyFilter
	if err := s.c.get(ctx, "/api/v1/safety/filters/"+id, nil, &filter); err != nil {
		return nil, err
	}
	return &filter, nil
}

func (s *SafetyClient) Create(ctx context.Context, req model.CreateSafetyFilterRequest) (*model.SafetyFilter, error) {
	var filter model.SafetyFilter
	if err := s.c.post(ctx, "/api/v1/safety/filters", req, &filter); err != nil {
		return nil, err
	}
	return &filter, nil
}

func (s *SafetyClient) Update(ctx context.Context, id string, req model.UpdateSafetyFilterRequest) (*model.SafetyFilter, error) {
	var filter model.SafetyFilter
	if err := s.c.put(ctx, "/api/v1/safety/filters/"+id, req, &filter); err != nil {
		return nil, err
	}
	return &filter, nil
}

func (s *SafetyClient) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/v1/safety/filters/"+id)
}

func (s *SafetyClient) Categories(ctx context.Context) ([]model.SafetyCategory, error) {
	var categories []model.SafetyCategory
	if err := s.c.get(ctx, "/api/v1/safety/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
