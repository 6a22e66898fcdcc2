// Package gemini provides a model.Model implementation backed by the Google
// Gemini API (function calling included). It adapts Wayfarer's normalized
// request/response structures into the genai SDK's chat format and back.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wayfarer-ai/wayfarer/core"
	"github.com/wayfarer-ai/wayfarer/model"
)

// Options configure the Gemini model adapter.
type Options struct {
	Model string
}

// Model wraps the Gemini chat API behind the generic model.Model interface.
type Model struct {
	client *genai.Client
	opts   Options
}

// New creates a Gemini model using an API key.
func New(ctx context.Context, apiKey string, optFns ...func(o *Options)) (*Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return NewFromClient(client, optFns...), nil
}

// NewFromClient creates a Gemini model from an existing client.
func NewFromClient(client *genai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{Model: "gemini-2.5-flash"}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Close releases the underlying client.
func (m *Model) Close() error { return m.client.Close() }

// Generate implements model.Model. The conversation history (all turns but
// the last) seeds the chat session; the final turn is sent as the message.
func (m *Model) Generate(ctx context.Context, req model.Request) (*model.Response, error) {
	if len(req.Contents) == 0 {
		return nil, fmt.Errorf("no contents provided")
	}

	gm := m.client.GenerativeModel(m.opts.Model)
	if len(req.Tools) > 0 {
		gm.Tools = buildTools(req.Tools)
	}

	cs := gm.StartChat()
	cs.History = buildHistory(req.Contents[:len(req.Contents)-1])

	resp, err := cs.SendMessage(ctx, buildParts(req.Contents[len(req.Contents)-1])...)
	if err != nil {
		return nil, fmt.Errorf("gemini api error: %w", err)
	}
	return convertResponse(resp), nil
}

// Info returns metadata describing this Gemini model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "gemini"}
}

// buildHistory converts normalized turns into genai contents. Gemini only
// accepts the roles "user" and "model", which match core's roles directly.
func buildHistory(turns []core.Turn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		history = append(history, &genai.Content{Role: t.Role, Parts: buildParts(t)})
	}
	return history
}

func buildParts(t core.Turn) []genai.Part {
	parts := make([]genai.Part, 0, len(t.Parts))
	for _, p := range t.Parts {
		switch v := p.(type) {
		case core.TextPart:
			if v.Text != "" {
				parts = append(parts, genai.Text(v.Text))
			}
		case core.FunctionCallPart:
			parts = append(parts, genai.FunctionCall{
				Name: v.FunctionCall.Name,
				Args: v.FunctionCall.Arguments,
			})
		case core.FunctionResponsePart:
			parts = append(parts, genai.FunctionResponse{
				Name:     v.FunctionResponse.Name,
				Response: responsePayload(v.FunctionResponse),
			})
		}
	}
	return parts
}

// responsePayload wraps a tool outcome the way the upstream API expects:
// a single-key object holding either the result or the error message.
func responsePayload(fr core.FunctionResponse) map[string]any {
	if fr.Error != "" {
		return map[string]any{"error": fr.Error}
	}
	return map[string]any{"result": fr.Response}
}

func buildTools(defs []model.ToolDefinition) []*genai.Tool {
	decls := make([]*genai.FunctionDeclaration, 0, len(defs))
	for _, d := range defs {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  buildSchema(d.Parameters),
		})
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}

// buildSchema converts the minimal JSON-schema maps used by the tool
// subsystem into genai schema values.
func buildSchema(schema map[string]any) *genai.Schema {
	if schema == nil {
		return &genai.Schema{Type: genai.TypeObject}
	}
	gs := &genai.Schema{Type: schemaType(schema["type"])}
	if desc, ok := schema["description"].(string); ok {
		gs.Description = desc
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		gs.Properties = make(map[string]*genai.Schema, len(props))
		for name, sub := range props {
			if subMap, ok := sub.(map[string]any); ok {
				gs.Properties[name] = buildSchema(subMap)
			}
		}
	}
	switch req := schema["required"].(type) {
	case []string:
		gs.Required = req
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				gs.Required = append(gs.Required, s)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		gs.Items = buildSchema(items)
	}
	return gs
}

func schemaType(t any) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	}
	return genai.TypeObject
}

// convertResponse maps a genai response onto the normalized shape. An empty
// candidate set yields an empty model turn; the dispatch loop decides how to
// surface that.
func convertResponse(resp *genai.GenerateContentResponse) *model.Response {
	out := &model.Response{Content: core.Turn{Role: core.RoleModel}, FinishReason: "stop"}
	if resp.UsageMetadata != nil {
		out.Usage = &model.TokenUsage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.Text:
			out.Content.Parts = append(out.Content.Parts, core.TextPart{Text: string(v)})
		case genai.FunctionCall:
			out.Content.Parts = append(out.Content.Parts, core.FunctionCallPart{
				FunctionCall: core.FunctionCall{Name: v.Name, Arguments: v.Args},
			})
			out.FinishReason = "tool_calls"
		}
	}
	return out
}
