package core

// Part represents a polymorphic segment of role-based turn content. Concrete
// part types implement the unexported isPart marker enabling a closed set.
type Part interface{ isPart() }

// TextPart is a plain text content segment.
type TextPart struct {
	Text string // Plain UTF-8 text
}

// isPart implements the Part interface for TextPart.
func (TextPart) isPart() {}

// FunctionCall describes a tool invocation request emitted by the model.
// Arguments arrive as a decoded JSON object; argument validation is the
// responsibility of the tool handler, not the dispatch loop.
type FunctionCall struct {
	ID        string         `json:"id,omitempty"`        // Provider call id (empty for providers without one)
	Name      string         `json:"name"`                // Tool name
	Arguments map[string]any `json:"arguments,omitempty"` // Decoded argument payload
}

// FunctionCallPart wraps a FunctionCall as a content part.
type FunctionCallPart struct {
	FunctionCall FunctionCall
}

// isPart implements the Part interface for FunctionCallPart.
func (FunctionCallPart) isPart() {}

// FunctionResponse describes the outcome of a tool invocation, reported back
// into the conversation. Exactly one of Response or Error is populated.
type FunctionResponse struct {
	ID       string `json:"id,omitempty"`       // Matches the originating FunctionCall ID
	Name     string `json:"name"`               // Tool name the result belongs to
	Response any    `json:"response,omitempty"` // Successful result (any JSON-serializable shape)
	Error    string `json:"error,omitempty"`    // Populated on failure
}

// FunctionResponsePart wraps a FunctionResponse as a content part.
type FunctionResponsePart struct {
	FunctionResponse FunctionResponse
}

// isPart implements the Part interface for FunctionResponsePart.
func (FunctionResponsePart) isPart() {}
