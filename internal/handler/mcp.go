package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type MCPHandler struct {
	svc *service.MCPService
}

func NewMCPHandler(svc *service.MCPService) *MCPHandler {
	return &MCPHandler{svc: svc}
}

// List godoc
// @Summary List MCP servers
// @Tags mcp
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Page[model.MCPServer]
// @Router /api/v1/mcp/servers [get]
func (h *MCPHandler) List(c *gin.Context) {
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
// @Summary Get MCP server detail
// @Tags mcp
// @Produce json
// @Security BearerAuth
// @Param id path string true "Server ID"
// @Success 200 {object} model.MCPServer
// @Router /api/v1/mcp/servers/{id} [get]
func (h *MCPHandler) Get(c *gin.Context) {
	server, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, server)
}

// Register godoc
// @Summary Register an MCP server
// @Tags mcp
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterMCPServerRequest true "Server payload"
// @Success 200 {object} model.MCPServer
// @Router /api/v1/mcp/servers [post]
func (h *MCPHandler) Register(c *gin.Context) {
	var req model.RegisterMCPServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	server, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, server)
}

// Update godoc
// @Summary Update an MCP server
// @Tags mcp
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Server ID"
// @Param request body model.UpdateMCPServerRequest true "Update payload"
// @Success 200 {object} model.MCPServer
// @Router /api/v1/mcp/servers/{id} [put]
func (h *MCPHandler) Update(c *gin.Context) {
	var req model.UpdateMCPServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	server, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, server)
}

// Delete godoc
// @Summary Remove an MCP server
// @Tags mcp
// @Produce json
// @Security BearerAuth
// @Param id path string true "Server ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/mcp/servers/{id} [delete]
func (h *MCPHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// Tools godoc
// @Summary List tools exposed by an MCP server
// @Tags mcp
// @Produce json
// @Security BearerAuth
// @Param id path string true "Server ID"
// @Success 200 {array} model.MCPTool
// @Router /api/v1/mcp/servers/{id}/tools [get]
func (h *MCPHandler) Tools(c *gin.Context) {
	tools, err := h.svc.Tools(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tools)
}
