package sktai

import (
	"context"

	"github.com/axportal/backend/internal/model"
)

// APIKeyClient wraps the gateway API-key management endpoints.
type APIKeyClient struct {
	c *Client
}

func NewAPIKeyClient(c *Client) *APIKeyClient {
	return &APIKeyClient{c: c}
}

func (k *APIKeyClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.APIKey], error) {
	var page model.Page[model.APIKey]
	if err := k.c.get(ctx, "/api/v1/gateway/api-keys", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (k *APIKeyClient) Create(ctx context.Context, req model.CreateAPIKeyRequest) (*model.APIKey, error) {
	var key model.APIKey
	if err := k.c.post(ctx, "/api/v1/gateway/api-keys", req, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

func (k *APIKeyClient) Revoke(ctx context.Context, id string) error {
	return k.c.delete(ctx, "/api/v1/gateway/api-keys/"+id)
}
