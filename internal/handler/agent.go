package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/service"
)

type AgentHandler struct {
	svc *service.AgentService
}

func NewAgentHandler(svc *service.AgentService) *AgentHandler {
	return &AgentHandler{svc: svc}
}

// List godoc
// @Summary List agents
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Page[model.Agent]
// @Router /api/v1/agents [get]
func (h *AgentHandler) List(c *gin.Context) {
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
// @Summary Get agent detail
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} model.Agent
// @Router /api/v1/agents/{id} [get]
func (h *AgentHandler) Get(c *gin.Context) {
	agent, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// Create godoc
// @Summary Create an agent
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAgentRequest true "Agent payload"
// @Success 200 {object} model.Agent
// @Router /api/v1/agents [post]
func (h *AgentHandler) Create(c *gin.Context) {
	var req model.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	agent, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// Update godoc
// @Summary Update an agent
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Param request body model.UpdateAgentRequest true "Update payload"
// @Success 200 {object} model.Agent
// @Router /api/v1/agents/{id} [put]
func (h *AgentHandler) Update(c *gin.Context) {
	var req model.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	agent, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// Delete godoc
// @Summary Delete an agent
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/agents/{id} [delete]
func (h *AgentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

// Deploy godoc
// @Summary Deploy an agent
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} model.AgentDeployment
// @Router /api/v1/agents/{id}/deploy [post]
func (h *AgentHandler) Deploy(c *gin.Context) {
	deployment, err := h.svc.Deploy(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, deployment)
}

// Test godoc
// @Summary Run an agent test against an attached input file
// @Tags agents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Param input formData string false "Test prompt"
// @Param file formData file true "Input file"
// @Success 200 {object} object
// @Router /api/v1/agents/{id}/test [post]
func (h *AgentHandler) Test(c *gin.Context) {
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

	result, err := h.svc.TestStream(c.Request.Context(), c.Param("id"), c.PostForm("input"), fileHeader.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// Invoke godoc
// @Summary Invoke a deployed agent through the gateway
// @Description The X-Api-Key header is forwarded as the gateway bearer; the portal token is not used.
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AgentInvokeRequest true "Invocation payload"
// @Success 200 {object} object
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/agents/invoke [post]
func (h *AgentHandler) Invoke(c *gin.Context) {
	apiKey := strings.TrimSpace(c.GetHeader("X-Api-Key"))
	if apiKey == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Api-Key header is required"})
		return
	}

	var req model.AgentInvokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.svc.Invoke(c.Request.Context(), req.AppID, apiKey, req.Payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}
