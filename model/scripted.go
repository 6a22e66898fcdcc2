package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/wayfarer-ai/wayfarer/core"
)

// ScriptedModel is a deterministic in-memory Model for tests. Responses are
// consumed in FIFO order; every received request is recorded for inspection.
type ScriptedModel struct {
	mu       sync.Mutex
	script   []scriptStep
	requests []Request
}

type scriptStep struct {
	resp *Response
	err  error
}

// NewScriptedModel constructs an empty scripted model.
func NewScriptedModel() *ScriptedModel {
	return &ScriptedModel{}
}

// EnqueueText queues a plain text model turn.
func (m *ScriptedModel) EnqueueText(text string) {
	m.Enqueue(&Response{
		Content:      core.NewModelTurn(core.TextPart{Text: text}),
		FinishReason: "stop",
	})
}

// EnqueueToolCall queues a model turn requesting the named tool.
func (m *ScriptedModel) EnqueueToolCall(name string, args map[string]any) {
	m.Enqueue(&Response{
		Content: core.NewModelTurn(core.FunctionCallPart{
			FunctionCall: core.FunctionCall{Name: name, Arguments: args},
		}),
		FinishReason: "tool_calls",
	})
}

// EnqueueEmpty queues a response with no content parts.
func (m *ScriptedModel) EnqueueEmpty() {
	m.Enqueue(&Response{Content: core.Turn{Role: core.RoleModel}})
}

// Enqueue queues a full response.
func (m *ScriptedModel) Enqueue(resp *Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scriptStep{resp: resp})
}

// EnqueueError queues a gateway failure.
func (m *ScriptedModel) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scriptStep{err: err})
}

// Generate implements Model by replaying the queued script.
func (m *ScriptedModel) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if len(m.script) == 0 {
		return nil, fmt.Errorf("scripted model exhausted after %d requests", len(m.requests))
	}
	step := m.script[0]
	m.script = m.script[1:]
	if step.err != nil {
		return nil, step.err
	}
	return step.resp, nil
}

// Requests returns every request received so far.
func (m *ScriptedModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	reqs := make([]Request, len(m.requests))
	copy(reqs, m.requests)
	return reqs
}

// Info implements the Model interface.
func (m *ScriptedModel) Info() Info {
	return Info{Name: "scripted", Provider: "test"}
}
