package service

import (
	"context"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type ModelService struct {
	models *sktai.ModelClient
}

func NewModelService(models *sktai.ModelClient) *ModelService {
	return &ModelService{models: models}
}

func (s *ModelService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.RegistryModel], error) {
	return s.models.List(ctx, query)
}

func (s *ModelService) Get(ctx context.Context, id string) (*model.RegistryModel, error) {
	return s.models.Get(ctx, id)
}

func (s *ModelService) Register(ctx context.Context, req model.RegisterModelRequest) (*model.RegistryModel, error) {
	return s.models.Register(ctx, req)
}

func (s *ModelService) Update(ctx context.Context, id string, req model.UpdateModelRequest) (*model.RegistryModel, error) {
	return s.models.Update(ctx, id, req)
}

func (s *ModelService) Delete(ctx context.Context, id string) error {
	return s.models.Delete(ctx, id)
}

func (s *ModelService) Providers(ctx context.Context) ([]model.ModelProvider, error) {
	return s.models.Providers(ctx)
}

func (s *ModelService) Types(ctx context.Context) ([]string, error) {
	return s.models.Types(ctx)
}
