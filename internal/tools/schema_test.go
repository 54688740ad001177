package tools

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() mcp.ToolInputSchema {
	return mcp.NewTool("t",
		mcp.WithString("name", mcp.Required()),
		mcp.WithNumber("limit"),
		mcp.WithString("interval", mcp.Enum("1m", "1h")),
		mcp.WithBoolean("verbose"),
		mcp.WithArray("symbols", mcp.WithStringItems()),
	).InputSchema
}

func TestValidateArguments_Valid(t *testing.T) {
	err := ValidateArguments(testSchema(), map[string]interface{}{
		"name":     "BTCUSDT",
		"limit":    float64(10),
		"interval": "1h",
		"verbose":  true,
		"symbols":  []interface{}{"A", "B"},
		"extra":    "ignored",
	})
	assert.NoError(t, err)
}

func TestValidateArguments_Failures(t *testing.T) {
	tests := []struct {
		name  string
		args  map[string]interface{}
		field string
	}{
		{"missing required", map[string]interface{}{}, "name"},
		{"null required", map[string]interface{}{"name": nil}, "name"},
		{"blank required", map[string]interface{}{"name": "  "}, "name"},
		{"wrong string type", map[string]interface{}{"name": 5.0}, "name"},
		{"wrong number type", map[string]interface{}{"name": "x", "limit": "ten"}, "limit"},
		{"enum violation", map[string]interface{}{"name": "x", "interval": "2d"}, "interval"},
		{"wrong bool type", map[string]interface{}{"name": "x", "verbose": "yes"}, "verbose"},
		{"array item type", map[string]interface{}{"name": "x", "symbols": []interface{}{"A", 1.0}}, "symbols[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArguments(testSchema(), tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArguments))

			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.field, argErr.Field)
		})
	}
}
