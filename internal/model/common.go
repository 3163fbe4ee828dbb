package model

import (
	"net/url"
	"strconv"
)

// ListQuery carries the upstream list-endpoint conventions.
type ListQuery struct {
	Page   int    `form:"page"`
	Size   int    `form:"size"`
	Sort   string `form:"sort"`
	Filter string `form:"filter"`
	Search string `form:"search"`
}

func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Filter != "" {
		values.Set("filter", q.Filter)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

type Pagination struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
