package service

import (
	"context"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type ServingService struct {
	servings *sktai.ServingClient
}

func NewServingService(servings *sktai.ServingClient) *ServingService {
	return &ServingService{servings: servings}
}

func (s *ServingService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.Serving], error) {
	return s.servings.List(ctx, query)
}

func (s *ServingService) Get(ctx context.Context, id string) (*model.Serving, error) {
	return s.servings.Get(ctx, id)
}

func (s *ServingService) Create(ctx context.Context, req model.CreateServingRequest) (*model.Serving, error) {
	return s.servings.Create(ctx, req)
}

func (s *ServingService) Update(ctx context.Context, id string, req model.UpdateServingRequest) (*model.Serving, error) {
	return s.servings.Update(ctx, id, req)
}

func (s *ServingService) Delete(ctx context.Context, id string) error {
	return s.servings.Delete(ctx, id)
}

func (s *ServingService) Start(ctx context.Context, id string) error {
	return s.servings.Start(ctx, id)
}

func (s *ServingService) Stop(ctx context.Context, id string) error {
	return s.servings.Stop(ctx, id)
}

func (s *ServingService) Models(ctx context.Context) ([]model.RegistryModel, error) {
	return s.servings.Models(ctx)
}
