package service

import (
	"context"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type SafetyService struct {
	safety *sktai.SafetyClient
}

func NewSafetyService(safety *sktai.SafetyClient) *SafetyService {
	return &SafetyService{safety: safety}
}

func (s *SafetyService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.SafetyFilter], error) {
	return s.safety.List(ctx, query)
}

func (s *SafetyService) Get(ctx context.Context, id string) (*model.SafetyFilter, error) {
	return s.safety.Get(ctx, id)
}

func (s *SafetyService) Create(ctx context.Context, req model.CreateSafetyFilterRequest) (*model.SafetyFilter, error) {
	return s.safety.Create(ctx, req)
}

func (s *SafetyService) Update(ctx context.Context, id string, req model.UpdateSafetyFilterRequest) (*model.SafetyFilter, error) {
	return s.safety.Update(ctx, id, req)
}

func (s *SafetyService) Delete(ctx context.Context, id string) error {
	return s.safety.Delete(ctx, id)
}

func (s *SafetyService) Categories(ctx context.Context) ([]model.SafetyCategory, error) {
	return s.safety.Categories(ctx)
}
