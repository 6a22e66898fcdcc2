package core

import "github.com/google/uuid"

// Conversation roles. The model gateway only ever sees these two; tool
// results travel inside a user-role turn the way the upstream APIs expect.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one entry in a conversation history: a role plus ordered content
// parts. Turns are immutable once appended to a session.
type Turn struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// NewUserTurn creates a user turn carrying a single text part.
func NewUserTurn(text string) Turn {
	return Turn{Role: RoleUser, Parts: []Part{TextPart{Text: text}}}
}

// NewModelTurn creates a model turn from the given parts.
func NewModelTurn(parts ...Part) Turn {
	return Turn{Role: RoleModel, Parts: parts}
}

// NewToolResultTurn wraps a function response as the user-role turn fed back
// to the model after a tool execution.
func NewToolResultTurn(fr FunctionResponse) Turn {
	return Turn{Role: RoleUser, Parts: []Part{FunctionResponsePart{FunctionResponse: fr}}}
}

// NewToolResult builds a success function response for the named tool.
func NewToolResult(name string, result any) FunctionResponse {
	return FunctionResponse{Name: name, Response: result}
}

// NewToolError builds an error function response for the named tool.
func NewToolError(name, message string) FunctionResponse {
	return FunctionResponse{Name: name, Error: message}
}

// FirstPart returns the leading content part, or nil for an empty turn. The
// dispatch loop only ever inspects the leading part of a model turn; later
// parts are ignored.
func (t Turn) FirstPart() Part {
	if len(t.Parts) == 0 {
		return nil
	}
	return t.Parts[0]
}

// Text concatenates all text parts of the turn.
func (t Turn) Text() string {
	var s string
	for _, p := range t.Parts {
		if tp, ok := p.(TextPart); ok {
			s += tp.Text
		}
	}
	return s
}

// FunctionCalls returns any FunctionCall parts contained within the turn
// preserving their original order.
func (t Turn) FunctionCalls() []FunctionCall {
	var calls []FunctionCall
	for _, p := range t.Parts {
		if fc, ok := p.(FunctionCallPart); ok {
			calls = append(calls, fc.FunctionCall)
		}
	}
	return calls
}

// FunctionResponses returns any FunctionResponse parts contained within the
// turn preserving their original order.
func (t Turn) FunctionResponses() []FunctionResponse {
	var responses []FunctionResponse
	for _, p := range t.Parts {
		if fr, ok := p.(FunctionResponsePart); ok {
			responses = append(responses, fr.FunctionResponse)
		}
	}
	return responses
}

// NewID generates a new unique identifier for preferences and request
// correlation.
func NewID() string { return uuid.NewString() }
