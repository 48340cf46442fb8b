package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/bumpsafe/bumpsafe-be/internal/api/middleware"
	"github.com/bumpsafe/bumpsafe-be/internal/tools"
	"github.com/gin-gonic/gin"
)

// ToolRunner abstracts the tool service for testing
type ToolRunner interface {
	Run(ctx context.Context, req tools.Request) (tools.Response, error)
}

// ToolsHandler handles the AI-backed tool endpoints
type ToolsHandler struct {
	service ToolRunner
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(service ToolRunner) *ToolsHandler {
	return &ToolsHandler{service: service}
}

// ToolRequest is the body for POST /api/tools/:name
type ToolRequest struct {
	Query    string `json:"query"`
	Week     int    `json:"week"`
	Session  string `json:"session"`
	Sequence int64  `json:"sequence"`
}

// ToolInfo describes one tool in the registry listing
type ToolInfo struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

// List returns metadata for every available tool
func (h *ToolsHandler) List(c *gin.Context) {
	registry := tools.Registry()
	infos := make([]ToolInfo, 0, len(registry))
	for _, tool := range registry {
		infos = append(infos, ToolInfo{
			Name:        tool.Name,
			Title:       tool.Title,
			Description: tool.Description,
			Fields:      tool.Schema.Labels(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"tools": infos})
}

// Run executes one tool invocation
func (h *ToolsHandler) Run(c *gin.Context) {
	name := c.Param("name")

	var req ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)

	// Baby growth works off the week; derive a query when none is given
	if name == "baby-growth" {
		if req.Week < 1 || req.Week > 42 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week must be between 1 and 42"})
			return
		}
		if query == "" {
			query = fmt.Sprintf("week %d", req.Week)
		}
	} else if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	requestID := middleware.GetRequestID(c)
	log.Printf("[DEBUG] Tool run: tool=%s query=%q week=%d request_id=%s", name, query, req.Week, requestID)

	resp, err := h.service.Run(c.Request.Context(), tools.Request{
		Tool:     name,
		Query:    query,
		Week:     req.Week,
		Session:  req.Session,
		Sequence: req.Sequence,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[DEBUG] Tool run done: tool=%s source=%s stale=%v request_id=%s", name, resp.Source, resp.Stale, requestID)
	c.JSON(http.StatusOK, resp)
}
