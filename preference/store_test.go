package preference

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-ai/wayfarer/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.PreferenceStore = (*InMemoryStore)(nil)
	_ core.PreferenceStore = (*SQLiteStore)(nil)
)

func TestInMemoryStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	require.NoError(t, s.Save(ctx, "u1", "I am vegetarian"))
	require.NoError(t, s.Save(ctx, "u1", "I love museums"))
	require.NoError(t, s.Save(ctx, "u2", "window seats only"))

	prefs, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"I am vegetarian", "I love museums"}, prefs)
}

func TestInMemoryStore_UnknownUserIsEmpty(t *testing.T) {
	prefs, err := NewInMemoryStore().List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, prefs)
	assert.NotNil(t, prefs)
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "u1", "I am vegetarian"))
	require.NoError(t, s.Save(ctx, "u1", "budget hotels"))

	prefs, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"I am vegetarian", "budget hotels"}, prefs)
}

func TestSQLiteStore_ExactUserFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "u1", "vegetarian"))
	require.NoError(t, s.Save(ctx, "u11", "loves hiking"))

	prefs, err := s.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vegetarian"}, prefs)
}

func TestSQLiteStore_UnknownUserIsEmpty(t *testing.T) {
	prefs, err := newTestSQLiteStore(t).List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, prefs)
	assert.NotNil(t, prefs)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "u1", "aisle seat"))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	prefs, err := second.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"aisle seat"}, prefs)
}
