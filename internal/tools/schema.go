package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ValidateArguments checks args against the tool's declared input schema.
// Required properties must be present, non-null, and (for strings) non-blank.
// Declared properties must match their JSON type and enum, if any.
// Undeclared arguments are ignored.
func ValidateArguments(schema mcp.ToolInputSchema, args map[string]interface{}) error {
	for _, name := range schema.Required {
		v, ok := args[name]
		if !ok || v == nil {
			return &ArgumentError{Field: name, Reason: "is required"}
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			return &ArgumentError{Field: name, Reason: "must not be empty"}
		}
	}

	for name, v := range args {
		prop, ok := schema.Properties[name].(map[string]interface{})
		if !ok || v == nil {
			continue
		}
		if err := checkType(name, prop, v); err != nil {
			return err
		}
		if err := checkEnum(name, prop, v); err != nil {
			return err
		}
	}
	return nil
}

func checkType(name string, prop map[string]interface{}, v interface{}) error {
	want, _ := prop["type"].(string)
	switch want {
	case "string":
		if _, ok := v.(string); !ok {
			return &ArgumentError{Field: name, Reason: "must be a string"}
		}
	case "number":
		if !isNumber(v) {
			return &ArgumentError{Field: name, Reason: "must be a number"}
		}
	case "integer":
		if !isInteger(v) {
			return &ArgumentError{Field: name, Reason: "must be an integer"}
		}
	case "boolean":
		if _, ok := v.(bool); !ok {
			return &ArgumentError{Field: name, Reason: "must be a boolean"}
		}
	case "object":
		if _, ok := v.(map[string]interface{}); !ok {
			return &ArgumentError{Field: name, Reason: "must be an object"}
		}
	case "array":
		return checkArray(name, prop, v)
	}
	return nil
}

func checkArray(name string, prop map[string]interface{}, v interface{}) error {
	switch items := v.(type) {
	case []string:
		return nil
	case []interface{}:
		itemSchema, _ := prop["items"].(map[string]interface{})
		itemType, _ := itemSchema["type"].(string)
		if itemType != "string" {
			return nil
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				return &ArgumentError{Field: fmt.Sprintf("%s[%d]", name, i), Reason: "must be a string"}
			}
		}
		return nil
	default:
		return &ArgumentError{Field: name, Reason: "must be an array"}
	}
}

func checkEnum(name string, prop map[string]interface{}, v interface{}) error {
	var allowed []string
	switch e := prop["enum"].(type) {
	case []string:
		allowed = e
	case []interface{}:
		for _, a := range e {
			allowed = append(allowed, fmt.Sprint(a))
		}
	default:
		return nil
	}
	s := fmt.Sprint(v)
	for _, a := range allowed {
		if a == s {
			return nil
		}
	}
	return &ArgumentError{Field: name, Reason: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))}
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return true
	}
	return false
}

func isInteger(v interface{}) bool {
	switch n := v.(type) {
	case int, int32, int64:
		return true
	case float64:
		return n == float64(int64(n))
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}
