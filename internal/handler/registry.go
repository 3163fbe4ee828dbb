package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type ModelHandler struct {
	svc *service.ModelService
}

func NewModelHandler(svc *service.ModelService) *ModelHandler {
	return &ModelHandler{svc: svc}
}

// List godoc
// @Summary List registered models
// @Tags models
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Page[model.RegistryModel]
// @Router /api/v1/models [get]
func (h *ModelHandler) List(c *gin.Context) {
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
// @Summary Get model detail
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} model.RegistryModel
// @Router /api/v1/models/{id} [get]
func (h *ModelHandler) Get(c *gin.Context) {
	registered, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, registered)
}

// Register godoc
// @Summary Register a model
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterModelRequest true "Model payload"
// @Success 200 {object} model.RegistryModel
// @Router /api/v1/models [post]
func (h *ModelHandler) Register(c *gin.Context) {
	var req model.RegisterModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	registered, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, registered)
}

// Update godoc
// @Summary Update a model
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Param request body model.UpdateModelRequest true "Update payload"
// @Success 200 {object} model.RegistryModel
// @Router /api/v1/models/{id} [put]
func (h *ModelHandler) Update(c *gin.Context) {
	var req model.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a model
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "Model ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/models/{id} [delete]
func (h *ModelHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// Types godoc
// @Summary List model types
// @Tags models
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Router /api/v1/models/types [get]
func (h *ModelHandler) Types(c *gin.Context) {
	types, err := h.svc.Types(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// Providers godoc
// @Summary List model providers
// @Tags models
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ModelProvider
// @Router /api/v1/models/providers [get]
func (h *ModelHandler) Providers(c *gin.Context) {
	providers, err := h.svc.Providers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}
