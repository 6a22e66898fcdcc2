package tool

import (
	"context"
	"fmt"

	"github.com/wayfarer-ai/wayfarer/internal/util"
)

// Tool defines the interface for extending the agent with external
// capabilities. Tools are resolved by name from the Registry; the dispatch
// loop passes through whatever argument map the model supplied, so malformed
// arguments are the tool's responsibility to reject.
//
// Implementations should:
//   - Provide snake_case names matching the declarations shown to the model
//   - Define a minimal JSON schema for parameters
//   - Be safe for concurrent use
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description provided to the model
	// to help it decide when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Call executes the tool synchronously. The context carries the inbound
	// request deadline; errors are reported back into the conversation as
	// error tool results, never surfaced to the end user directly.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// ValidationError represents parameter validation errors with field detail.
type ValidationError = util.ValidationError

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}
