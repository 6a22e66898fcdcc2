package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) *FunctionTool {
	return NewFunctionTool(name, "echoes input", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
		},
		"required": []string{"text"},
	}, func(_ context.Context, args map[string]any) (any, error) {
		return args["text"], nil
	})
}

func TestFunctionTool_Success(t *testing.T) {
	sum := NewFunctionTool("sum", "Add numbers", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}, func(_ context.Context, args map[string]any) (any, error) {
		return args["a"].(float64) + args["b"].(float64), nil
	})

	result, err := sum.Call(context.Background(), map[string]any{"a": 2.0, "b": 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	_, err := echoTool("echo").Call(context.Background(), map[string]any{})
	assert.Error(t, err)

	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
	assert.Equal(t, "echo", toolErr.Tool)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	failing := NewFunctionTool("boom", "always fails", map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, errors.New("upstream unavailable")
	})

	_, err := failing.Call(context.Background(), map[string]any{})
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
	assert.Contains(t, toolErr.Message, "upstream unavailable")
}

func TestFunctionTool_CustomToolErrorPreserved(t *testing.T) {
	custom := NewFunctionTool("custom", "custom code", map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}, func(_ context.Context, _ map[string]any) (any, error) {
		return nil, NewToolError("custom", "key missing", "UNAUTHORIZED")
	})

	_, err := custom.Call(context.Background(), map[string]any{})
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", toolErr.Code)
}

func TestNewFunctionToolFromStruct(t *testing.T) {
	type args struct {
		City string `json:"city" description:"City name"`
	}
	ft := NewFunctionToolFromStruct("get_weather", "weather lookup", args{},
		func(_ context.Context, a map[string]any) (any, error) { return a["city"], nil })

	props := ft.Parameters()["properties"].(map[string]any)
	assert.Contains(t, props, "city")

	_, err := ft.Call(context.Background(), map[string]any{})
	assert.Error(t, err)
}

func TestRegistry_Lookup(t *testing.T) {
	r, err := NewRegistry(echoTool("a"), echoTool("b"))
	require.NoError(t, err)

	got, ok := r.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "a", got.Name())

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(echoTool("a"), echoTool("a"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	_, err := NewRegistry(echoTool(""))
	assert.Error(t, err)
}
