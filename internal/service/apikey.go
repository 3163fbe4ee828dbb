package service

import (
	"context"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type APIKeyService struct {
	keys *sktai.APIKeyClient
}

func NewAPIKeyService(keys *sktai.APIKeyClient) *APIKeyService {
	return &APIKeyService{keys: keys}
}

func (s *APIKeyService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.APIKey], error) {
	return s.keys.List(ctx, query)
}

func (s *APIKeyService) Create(ctx context.Context, req model.CreateAPIKeyRequest) (*model.APIKey, error) {
	return s.keys.Create(ctx, req)
}

func (s *APIKeyService) Revoke(ctx context.Context, id string) error {
	return s.keys.Revoke(ctx, id)
}
