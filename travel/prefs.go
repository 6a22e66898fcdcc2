package travel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wayfarer-ai/wayfarer/core"
)

// userIDArg is the argument injected by the dispatch loop for
// identity-scoped tools. It is never part of the declared schema, so the
// model cannot supply or spoof it.
const userIDArg = "user_id"

func injectedUserID(args map[string]any) (string, error) {
	userID, _ := args[userIDArg].(string)
	if userID == "" {
		return "", fmt.Errorf("system error: user_id was not provided to tool")
	}
	return userID, nil
}

// SavePreferenceTool persists a single long-term user preference.
type SavePreferenceTool struct {
	store core.PreferenceStore
}

// NewSavePreferenceTool wraps a preference store.
func NewSavePreferenceTool(store core.PreferenceStore) *SavePreferenceTool {
	return &SavePreferenceTool{store: store}
}

// Name implements tool.Tool.
func (t *SavePreferenceTool) Name() string { return "save_preference" }

// Description implements tool.Tool.
func (t *SavePreferenceTool) Description() string {
	return "Saves a single, self-contained long-term preference about the user, e.g. 'User is vegetarian'."
}

// Parameters implements tool.Tool.
func (t *SavePreferenceTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"preference": map[string]any{
				"type":        "string",
				"description": "The preference to remember, phrased as a standalone fact",
			},
		},
		"required": []string{"preference"},
	}
}

// Call implements tool.Tool.
func (t *SavePreferenceTool) Call(ctx context.Context, args map[string]any) (any, error) {
	userID, err := injectedUserID(args)
	if err != nil {
		return nil, err
	}
	preference, _ := args["preference"].(string)
	if preference == "" {
		return nil, fmt.Errorf("preference is required")
	}

	if err := t.store.Save(ctx, userID, preference); err != nil {
		return nil, fmt.Errorf("save preference: %w", err)
	}
	return fmt.Sprintf("Successfully saved preference: '%s'", preference), nil
}

// LoadPreferencesTool retrieves all stored preferences for the current user.
type LoadPreferencesTool struct {
	store core.PreferenceStore
}

// NewLoadPreferencesTool wraps a preference store.
func NewLoadPreferencesTool(store core.PreferenceStore) *LoadPreferencesTool {
	return &LoadPreferencesTool{store: store}
}

// Name implements tool.Tool.
func (t *LoadPreferencesTool) Name() string { return "load_preferences" }

// Description implements tool.Tool.
func (t *LoadPreferencesTool) Description() string {
	return "Loads all long-term preferences previously saved for the user."
}

// Parameters implements tool.Tool.
func (t *LoadPreferencesTool) Parameters() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// Call implements tool.Tool.
func (t *LoadPreferencesTool) Call(ctx context.Context, args map[string]any) (any, error) {
	userID, err := injectedUserID(args)
	if err != nil {
		return nil, err
	}

	prefs, err := t.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	out, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	return string(out), nil
}
