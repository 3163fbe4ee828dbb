package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type APIKeyHandler struct {
	svc *service.APIKeyService
}

func NewAPIKeyHandler(svc *service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{svc: svc}
}

// List godoc
// @Summary List gateway API keys
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Page[model.APIKey]
// @Router /api/v1/api-keys [get]
func (h *APIKeyHandler) List(c *gin.Context) {
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

// Create godoc
// @Summary Issue a gateway API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAPIKeyRequest true "Key payload"
// @Success 200 {object} model.APIKey
// @Router /api/v1/api-keys [post]
func (h *APIKeyHandler) Create(c *gin.Context) {
	var req model.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	key, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, key)
}

// Revoke godoc
// @Summary Revoke a gateway API key
// @Tags api-keys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Key ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/api-keys/{id} [delete]
func (h *APIKeyHandler) Revoke(c *gin.Context) {
	if err := h.svc.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "revoked"})
}
