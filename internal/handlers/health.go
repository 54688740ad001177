package handlers

import (
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xingmcp/toolservers/internal/common"
)

// ToolLister reports the tools a server exposes.
type ToolLister interface {
	List() []mcp.Tool
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger *common.Logger
	tools  ToolLister
}

// NewHealthHandler creates a new health handler. tools may be nil.
func NewHealthHandler(logger *common.Logger, tools ToolLister) *HealthHandler {
	return &HealthHandler{logger: logger, tools: tools}
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	count := 0
	if h.tools != nil {
		count = len(h.tools.List())
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"tools":  count,
	})
}
