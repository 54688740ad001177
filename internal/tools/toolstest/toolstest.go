// Package toolstest drives an MCP server through JSON-RPC messages in tests.
package toolstest

import (
	"encoding/json"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ListTools sends tools/list to s and returns the advertised tools.
func ListTools(t *testing.T, s *mcpserver.MCPServer) []mcpgo.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolsResult mcpgo.ListToolsResult
	if err := json.Unmarshal(resultJSON, &toolsResult); err != nil {
		t.Fatalf("failed to unmarshal ListToolsResult: %v", err)
	}
	return toolsResult.Tools
}

// ToolNames returns the names of the tools s advertises.
func ToolNames(t *testing.T, s *mcpserver.MCPServer) []string {
	t.Helper()
	var names []string
	for _, tool := range ListTools(t, s) {
		names = append(names, tool.Name)
	}
	return names
}

// CallTool sends tools/call to s and returns the decoded result.
func CallTool(t *testing.T, s *mcpserver.MCPServer, name string, args map[string]interface{}) *mcpgo.CallToolResult {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(paramsJSON) + `}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolResult mcpgo.CallToolResult
	if err := json.Unmarshal(resultJSON, &toolResult); err != nil {
		t.Fatalf("failed to unmarshal CallToolResult: %v", err)
	}
	return &toolResult
}

// Text joins the text blocks of a decoded result.
func Text(t *testing.T, r *mcpgo.CallToolResult) string {
	t.Helper()
	var parts []string
	for _, c := range r.Content {
		contentJSON, _ := json.Marshal(c)
		var tc struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(contentJSON, &tc); err != nil {
			t.Fatalf("failed to decode content: %v", err)
		}
		if tc.Type == "text" {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
