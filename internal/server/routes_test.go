package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/common"
	"github.com/xingmcp/toolservers/internal/tools"
)

func newTestHTTPServer(t *testing.T) *Server {
	t.Helper()

	logger := common.NewSilentLogger()
	mcpSrv := mcpserver.NewMCPServer("routes-test", "1.0.0", mcpserver.WithToolCapabilities(true))
	reg := tools.NewRegistry(mcpSrv, logger)
	if err := reg.Register(mcp.NewTool("noop"), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return tools.TextResult("ok"), nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	return New(Options{Name: "routes-test", Host: "127.0.0.1", Port: 0, MCP: mcpSrv, Tools: reg}, logger)
}

func TestRoutes_HealthEndpoint(t *testing.T) {
	srv := newTestHTTPServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Status string `json:"status"`
		Tools  int    `json:"tools"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %s", body.Status)
	}
	if body.Tools != 1 {
		t.Errorf("expected 1 tool, got %d", body.Tools)
	}
}

func TestRoutes_VersionEndpoint(t *testing.T) {
	srv := newTestHTTPServer(t)

	req := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["name"] != "routes-test" {
		t.Errorf("expected name routes-test, got %s", body["name"])
	}
}

func TestRoutes_NotFound(t *testing.T) {
	srv := newTestHTTPServer(t)

	req := httptest.NewRequest("GET", "/api/nope", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON 404, got %s", ct)
	}
}

func TestRoutes_MCPInitialize(t *testing.T) {
	srv := newTestHTTPServer(t)

	body := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`
	req := httptest.NewRequest("POST", "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"routes-test"`) {
		t.Errorf("expected server name in initialize result, got %s", w.Body.String())
	}
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected X-Correlation-ID header on MCP response")
	}
}

func TestNew_Address(t *testing.T) {
	srv := New(Options{Name: "x", Host: "localhost", Port: 8501}, common.NewSilentLogger())
	if srv.Addr() != "localhost:8501" {
		t.Errorf("expected localhost:8501, got %s", srv.Addr())
	}
}
