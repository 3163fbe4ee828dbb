package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type SafetyHandler struct {
	svc *service.SafetyService
}

func NewSafetyHandler(svc *service.SafetyService) *SafetyHandler {
	return &SafetyHandler{svc: svc}
}

// List godoc
// @Summary List safety filters
// @Tags safety
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Page[model.SafetyFilter]
// @Router /api/v1/safety/filters [get]
func (h *SafetyHandler) List(c *gin.Context) {
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
// @Summary Get safety filter detail
// @Tags safety
// @Produce json
// @Security BearerAuth
// @Param id path string true "Filter ID"
// @Success 200 {object} model.SafetyFilter
// @Router /api/v1/safety/filters/{id} [get]
func (h *SafetyHandler) Get(c *gin.Context) {
	filter, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, filter)
}

// Create godoc
// @Summary Create a safety filter
// @Tags safety
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateSafetyFilterRequest true "Filter payload"
// @Success 200 {object} model.SafetyFilter
// @Router /api/v1/safety/filters [post]
func (h *SafetyHandler) Create(c *gin.Context) {
	var req model.CreateSafetyFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	filter, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, filter)
}

// Update godoc
// @Summary Update a safety filter
// @Tags safety
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Filter ID"
// @Param request body model.UpdateSafetyFilterRequest true "Update payload"
// @Success 200 {object} model.SafetyFilter
// @Router /api/v1/safety/filters/{id} [put]
func (h *SafetyHandler) Update(c *gin.Context) {
	var req model.UpdateSafetyFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	filter, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, filter)
}

// Delete godoc
// @Summary Delete a safety filter
// @Tags safety
// @Produce json
// @Security BearerAuth
// @Param id path string true "Filter ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/safety/filters/{id} [delete]
func (h *SafetyHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// Categories godoc
// @Summary List safety filter categories
// @Tags safety
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SafetyCategory
// @Router /api/v1/safety/categories [get]
func (h *SafetyHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
