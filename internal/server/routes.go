package server

import (
	"net/http"

	"github.com/xingmcp/toolservers/internal/handlers"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// MCP endpoint (JSON-RPC over HTTP)
	if s.mcp != nil {
		mux.Handle("/mcp", s.mcp)
	}

	// API routes
	mux.HandleFunc("/api/health", s.health.ServeHTTP)
	mux.HandleFunc("/api/version", s.version.ServeHTTP)

	// 404 handler for everything else
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "The requested endpoint does not exist")
}
