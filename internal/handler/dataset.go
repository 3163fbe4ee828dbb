package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type DatasetHandler struct {
	svc *service.DatasetService
}

func NewDatasetHandler(svc *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// List godoc
// @Summary List datasets
// @Tags datasets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param size query int false "Page size"
// @Success 200 {object} model.Page[model.Dataset]
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/datasets [get]
func (h *DatasetHandler) List(c *gin.Context) {
	var query model.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	page, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get dataset detail
// @Tags datasets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dataset ID"
// @Success 200 {object} model.Dataset
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/datasets/{id} [get]
func (h *DatasetHandler) Get(c *gin.Context) {
	dataset, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataset)
}

// Create godoc
// @Summary Create a dataset
// @Tags datasets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateDatasetRequest true "Dataset payload"
// @Success 200 {object} model.Dataset
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/datasets [post]
func (h *DatasetHandler) Create(c *gin.Context) {
	var req model.CreateDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	dataset, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataset)
}

// Delete godoc
// @Summary Delete a dataset
// @Tags datasets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dataset ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/datasets/{id} [delete]
func (h *DatasetHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// UploadFile godoc
// @Summary Upload a dataset source file
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dataset ID"
// @Param file formData file true "Source file"
// @Success 200 {object} model.DatasetFile
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/datasets/{id}/files [post]
func (h *DatasetHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	uploaded, err := h.svc.UploadFile(c.Request.Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploaded)
}

// Preview godoc
// @Summary Preview dataset rows
// @Tags datasets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dataset ID"
// @Success 200 {object} model.DatasetPreview
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/datasets/{id}/preview [get]
func (h *DatasetHandler) Preview(c *gin.Context) {
	preview, err := h.svc.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}
