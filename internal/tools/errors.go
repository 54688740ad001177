package tools

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownTool is returned when no tool is registered under the requested name.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrDuplicateTool is returned when a tool name is registered twice.
	ErrDuplicateTool = errors.New("duplicate tool")
	// ErrInvalidArguments is returned when call arguments do not satisfy the tool's input schema.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ArgumentError names the argument that failed schema validation.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments: %q %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArguments.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArguments }
