// Package tools holds the tool registry that routes named calls to adapter handlers.
package tools

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xingmcp/toolservers/internal/common"
)

type registeredTool struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// Registry maps tool names to their descriptor and handler.
// Tools are registered at startup; registering a name twice is an error.
// When bound to an MCPServer every registered tool is also exposed through it,
// with arguments validated before the handler runs.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]registeredTool
	order  []string
	server *server.MCPServer
	logger *common.Logger
}

// NewRegistry creates a registry. s may be nil for a registry used only through Invoke.
func NewRegistry(s *server.MCPServer, logger *common.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]registeredTool),
		server: s,
		logger: logger,
	}
}

// Register adds a tool. It fails on an empty name, a nil handler, or a duplicate name.
func (r *Registry) Register(tool mcp.Tool, handler server.ToolHandlerFunc) error {
	if tool.Name == "" {
		return errors.New("tool has empty name")
	}
	if handler == nil {
		return errors.Newf("tool %q has no handler", tool.Name)
	}

	r.mu.Lock()
	if _, exists := r.tools[tool.Name]; exists {
		r.mu.Unlock()
		return errors.Wrapf(ErrDuplicateTool, "tool %q", tool.Name)
	}
	r.tools[tool.Name] = registeredTool{tool: tool, handler: handler}
	r.order = append(r.order, tool.Name)
	r.mu.Unlock()

	if r.server != nil {
		r.server.AddTool(tool, r.dispatch)
	}

	r.logger.Debug().Str("tool", tool.Name).Msg("tool registered")
	return nil
}

// Entry pairs a tool descriptor with its handler.
type Entry struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// RegisterAll registers entries in order, stopping at the first failure.
func (r *Registry) RegisterAll(entries ...Entry) error {
	for _, e := range entries {
		if err := r.Register(e.Tool, e.Handler); err != nil {
			return err
		}
	}
	return nil
}

// Server returns the MCP server the registry publishes to, or nil.
func (r *Registry) Server() *server.MCPServer {
	return r.server
}

// List returns the registered tool descriptors in registration order.
func (r *Registry) List() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].tool)
	}
	return out
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (mcp.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tools[name]
	return rt.tool, ok
}

// Invoke validates args against the named tool's schema and runs its handler.
// It returns ErrUnknownTool for an unregistered name and an *ArgumentError
// (matching ErrInvalidArguments) when validation fails.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	return r.invoke(ctx, request)
}

// dispatch is the handler installed on the MCP server for every registered tool.
// Schema violations are reported to the caller as an error-flagged result.
func (r *Registry) dispatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := r.invoke(ctx, request)
	if errors.Is(err, ErrInvalidArguments) {
		return ErrorResult(err.Error()), nil
	}
	return result, err
}

func (r *Registry) invoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.Params.Name

	r.mu.RLock()
	rt, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTool, "%q", name)
	}

	args := request.GetArguments()
	if args == nil {
		args = map[string]interface{}{}
		request.Params.Arguments = args
	}

	logger := r.logger.WithCorrelationId(uuid.New().String())

	if err := ValidateArguments(rt.tool.InputSchema, args); err != nil {
		logger.Warn().Str("tool", name).Str("error", err.Error()).Msg("tool arguments rejected")
		return nil, err
	}

	logger.Debug().Str("tool", name).Msg("tool call started")
	start := time.Now()

	result, err := rt.handler(withLogger(ctx, logger), request)
	duration := time.Since(start)
	if err != nil {
		logger.Warn().Str("tool", name).Str("error", err.Error()).Dur("duration", duration).Msg("tool call failed")
		return nil, err
	}
	if result == nil {
		result = ErrorResult("Error: tool returned no result")
	}

	logger.Debug().
		Str("tool", name).
		Bool("is_error", result.IsError).
		Dur("duration", duration).
		Msg("tool call finished")
	return result, nil
}
