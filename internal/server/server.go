// Package server hosts an MCP server over Streamable HTTP next to JSON status endpoints.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/handlers"
)

// Options describes what the HTTP server exposes.
type Options struct {
	Name  string
	Host  string
	Port  int
	MCP   *mcpserver.MCPServer
	Tools handlers.ToolLister
}

// Server manages the HTTP server and routes.
type Server struct {
	router  *http.ServeMux
	server  *http.Server
	logger  *common.Logger
	mcp     http.Handler
	health  *handlers.HealthHandler
	version *handlers.VersionHandler
}

// New creates a new HTTP server. The MCP endpoint is stateless: every request stands alone.
func New(opts Options, logger *common.Logger) *Server {
	s := &Server{
		logger:  logger,
		health:  handlers.NewHealthHandler(logger, opts.Tools),
		version: handlers.NewVersionHandler(logger, opts.Name),
	}
	if opts.MCP != nil {
		s.mcp = mcpserver.NewStreamableHTTPServer(opts.MCP,
			mcpserver.WithStateLess(true),
		)
	}

	s.router = s.setupRoutes()

	s.server = &http.Server{
		Addr:         net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // upstream calls are bounded by their own timeouts
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info().
		Str("address", s.server.Addr).
		Str("url", fmt.Sprintf("http://%s/mcp", s.server.Addr)).
		Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server failed")
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
