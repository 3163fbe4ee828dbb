package sktai

import (
	"context"
	"io"

	"github.com/axportal/backend/internal/model"
)

// DatasetClient wraps the data-catalog endpoints.
type DatasetClient struct {
	c *Client
}

func NewDatasetClient(c *Client) *DatasetClient {
	return &DatasetClient{c: c}
}

func (d *DatasetClient) List(ctx context.Context, query model.ListQuery) (*model.Page[model.Dataset], error) {
	var page model.Page[model.Dataset]
	if err := d.c.get(ctx, "/api/v1/datasets", query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (d *DatasetClient) Get(ctx context.Context, id string) (*model.Dataset, error) {
	var dataset model.Dataset
	if err := d.c.get(ctx, "/api/v1/datasets/"+id, nil, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

func (d *DatasetClient) Create(ctx context.Context, req model.CreateDatasetRequest) (*model.Dataset, error) {
	var dataset model.Dataset
	if err := d.c.post(ctx, "/api/v1/datasets", req, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

func (d *DatasetClient) Delete(ctx context.Context, id string) error {
	return d.c.delete(ctx, "/api/v1/datasets/"+id)
}

// UploadFile pushes a source file into a dataset. Multipart endpoint; the
// shaping layer leaves Content-Type to the multipart writer.
func (d *DatasetClient) UploadFile(ctx context.Context, id, filename string, file io.Reader) (*model.DatasetFile, error) {
	var uploaded model.DatasetFile
	fields := map[string]string{"dataset_id": id}
	if err := d.c.upload(ctx, "/api/v1/datasets/upload/files", fields, "file", filename, file, &uploaded); err != nil {
		return nil, err
	}
	return &uploaded, nil
}

func (d *DatasetClient) Preview(ctx context.Context, id string) (*model.DatasetPreview, error) {
	var preview model.DatasetPreview
	if err := d.c.get(ctx, "/api/v1/datasets/"+id+"/preview", nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}
