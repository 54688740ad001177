package tools

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
)

var validate = validator.New()

// BindArguments decodes the call arguments into target and runs its `validate` tags.
// Validation failures are returned as validator.ValidationErrors.
func BindArguments(request mcp.CallToolRequest, target interface{}) error {
	if request.GetArguments() == nil {
		request.Params.Arguments = map[string]interface{}{}
	}
	if err := request.BindArguments(target); err != nil {
		return err
	}
	return validate.Struct(target)
}

// GetTrimmedString returns a string argument with surrounding whitespace removed.
func GetTrimmedString(request mcp.CallToolRequest, key, defaultVal string) string {
	v := strings.TrimSpace(request.GetString(key, ""))
	if v == "" {
		return defaultVal
	}
	return v
}

// GetOptionalInt returns an integer argument, or 0 when it is absent.
func GetOptionalInt(request mcp.CallToolRequest, key string) int64 {
	args := request.GetArguments()
	if args == nil {
		return 0
	}
	switch v := args[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	}
	return 0
}
