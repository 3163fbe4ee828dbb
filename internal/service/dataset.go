package service

import (
	"context"
	"io"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

type DatasetService struct {
	datasets *sktai.DatasetClient
}

func NewDatasetService(datasets *sktai.DatasetClient) *DatasetService {
	return &DatasetService{datasets: datasets}
}

func (s *DatasetService) List(ctx context.Context, query model.ListQuery) (*model.Page[model.Dataset], error) {
	return s.datasets.List(ctx, query)
}

func (s *DatasetService) Get(ctx context.Context, id string) (*model.Dataset, error) {
	return s.datasets.Get(ctx, id)
}

func (s *DatasetService) Create(ctx context.Context, req model.CreateDatasetRequest) (*model.Dataset, error) {
	return s.datasets.Create(ctx, req)
}

func (s *DatasetService) Delete(ctx context.Context, id string) error {
	return s.datasets.Delete(ctx, id)
}

func (s *DatasetService) UploadFile(ctx context.Context, id, filename string, file io.Reader) (*model.DatasetFile, error) {
	return s.datasets.UploadFile(ctx, id, filename, file)
}

func (s *DatasetService) Preview(ctx context.Context, id string) (*model.DatasetPreview, error) {
	return s.datasets.Preview(ctx, id)
}
