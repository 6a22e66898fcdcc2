package model

import (
	"context"

	"github.com/wayfarer-ai/wayfarer/core"
)

// ToolDefinition declaratively exposes a callable tool to the model.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema (minimal subset)
}

// Request captures the normalized gateway input: the full conversation so
// far plus the tool declarations the model may call.
type Request struct {
	Contents []core.Turn      `json:"contents"`
	Tools    []ToolDefinition `json:"tools,omitempty"`
}

// TokenUsage captures token statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is one complete model turn. Content may be empty when the
// provider returns no candidates or no parts; the dispatch loop treats that
// as a terminal condition for the request.
type Response struct {
	Content      core.Turn   `json:"content"`
	FinishReason string      `json:"finish_reason,omitempty"` // "stop", "tool_calls", ...
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a gateway implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "gemini", "openai", "anthropic", ...
}

// Model is the minimal interface required to drive generation. Calls are
// synchronous: the dispatch loop is strictly sequential with at most one
// outstanding gateway call per session, so no streaming surface is exposed.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}
