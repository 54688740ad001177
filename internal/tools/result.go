package tools

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xingmcp/toolservers/internal/upstream"
)

// TextResult wraps text in a success envelope.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// TextResults wraps several text blocks, in order, in one success envelope.
func TextResults(texts ...string) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(texts))
	for _, text := range texts {
		content = append(content, mcp.NewTextContent(text))
	}
	return &mcp.CallToolResult{Content: content}
}

// ErrorResult wraps message in an error-flagged envelope.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// JSONResult renders v as indented JSON in a success envelope.
func JSONResult(v interface{}) *mcp.CallToolResult {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult(fmt.Sprintf("Error encoding result: %v", err))
	}
	return TextResult(string(out))
}

// ResultText concatenates the text blocks of a result, one per line.
func ResultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	var out string
	for i, c := range r.Content {
		tc, ok := c.(mcp.TextContent)
		if !ok {
			continue
		}
		if i > 0 {
			out += "\n"
		}
		out += tc.Text
	}
	return out
}

// UpstreamErrorResult reports a failed upstream call as an error-flagged envelope.
// The upstream's own message is appended when it supplied one.
func UpstreamErrorResult(prefix string, err error) *mcp.CallToolResult {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return ErrorResult(prefix + ": " + statusErr.Message)
	}
	return ErrorResult(prefix + ": " + err.Error())
}
