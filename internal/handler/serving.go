package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type ServingHandler struct {
	svc *service.ServingService
}

func NewServingHandler(svc *service.ServingService) *ServingHandler {
	return &ServingHandler{svc: svc}
}

// List godoc
// @Summary List servings
// @Tags servings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Page[model.Serving]
// @Router /api/v1/servings [get]
func (h *ServingHandler) List(c *gin.Context) {
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
// @Summary Get serving detail
// @Tags servings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Serving ID"
// @Success 200 {object} model.Serving
// @Router /api/v1/servings/{id} [get]
func (h *ServingHandler) Get(c *gin.Context) {
	serving, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, serving)
}

// Create godoc
// @Summary Create a serving
// @Tags servings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateServingRequest true "Serving payload"
// @Success 200 {object} model.Serving
// @Router /api/v1/servings [post]
func (h *ServingHandler) Create(c *gin.Context) {
	var req model.CreateServingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	serving, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, serving)
}

// Update godoc
// @Summary Update a serving
// @Tags servings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Serving ID"
// @Param request body model.UpdateServingRequest true "Update payload"
// @Success 200 {object} model.Serving
// @Router /api/v1/servings/{id} [put]
func (h *ServingHandler) Update(c *gin.Context) {
	var req model.UpdateServingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	serving, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, serving)
}

// Delete godoc
// @Summary Delete a serving
// @Tags servings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Serving ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/servings/{id} [delete]
func (h *ServingHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// Models godoc
// @Summary List models eligible for serving
// @Tags servings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RegistryModel
// @Router /api/v1/servings/models [get]
func (h *ServingHandler) Models(c *gin.Context) {
	models, err := h.svc.Models(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models)
}

// Start godoc
// @Summary Start a serving
// @Tags servings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Serving ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/servings/{id}/start [post]
func (h *ServingHandler) Start(c *gin.Context) {
	if err := h.svc.Start(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "starting"})
}

// Stop godoc
// @Summary Stop a serving
// @Tags servings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Serving ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/servings/{id}/stop [post]
func (h *ServingHandler) Stop(c *gin.Context) {
	if err := h.svc.Stop(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "stopping"})
}
