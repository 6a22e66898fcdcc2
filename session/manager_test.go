package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-ai/wayfarer/core"
	"github.com/wayfarer-ai/wayfarer/preference"
)

type failingStore struct{}

func (failingStore) Save(context.Context, string, string) error { return errors.New("store down") }
func (failingStore) List(context.Context, string) ([]string, error) {
	return nil, errors.New("store down")
}

// blockingStore stalls List for one user until released.
type blockingStore struct {
	user    string
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingStore) Save(context.Context, string, string) error { return nil }
func (s *blockingStore) List(_ context.Context, userID string) ([]string, error) {
	if userID == s.user {
		s.once.Do(func() { close(s.started) })
		<-s.release
	}
	return nil, nil
}

func TestGetOrCreate_SeedsPolicyPair(t *testing.T) {
	m := NewManager(preference.NewInMemoryStore(), nil)

	s := m.GetOrCreate(context.Background(), "alice")
	turns := s.Turns()
	require.Len(t, turns, 2)

	assert.Equal(t, core.RoleUser, turns[0].Role)
	assert.Contains(t, turns[0].Text(), "SYSTEM_RULE:")
	assert.Equal(t, core.RoleModel, turns[1].Role)
	assert.Equal(t, "Understood. I am a helpful travel agent. I will follow your rules.", turns[1].Text())
}

func TestGetOrCreate_SeedsStoredPreferences(t *testing.T) {
	store := preference.NewInMemoryStore()
	require.NoError(t, store.Save(context.Background(), "alice", "User is vegetarian"))
	require.NoError(t, store.Save(context.Background(), "alice", "User loves museums"))

	m := NewManager(store, nil)
	s := m.GetOrCreate(context.Background(), "alice")
	turns := s.Turns()
	require.Len(t, turns, 4)

	assert.Equal(t, core.RoleUser, turns[2].Role)
	assert.Equal(t,
		"Please remember these are my long-term preferences: User is vegetarian; User loves museums",
		turns[2].Text())
	assert.Equal(t, core.RoleModel, turns[3].Role)
	assert.Equal(t, "Understood. I have loaded your preferences.", turns[3].Text())
}

func TestGetOrCreate_NoPreferencesNoSeedPair(t *testing.T) {
	m := NewManager(preference.NewInMemoryStore(), nil)
	assert.Equal(t, 2, m.GetOrCreate(context.Background(), "bob").Len())
}

func TestGetOrCreate_StoreFailureStillCreates(t *testing.T) {
	m := NewManager(failingStore{}, nil)
	s := m.GetOrCreate(context.Background(), "alice")
	assert.Equal(t, 2, s.Len())
}

func TestGetOrCreate_ExistingSessionUnchanged(t *testing.T) {
	store := preference.NewInMemoryStore()
	m := NewManager(store, nil)

	s1 := m.GetOrCreate(context.Background(), "alice")
	require.Equal(t, 2, s1.Len())

	// preferences saved after creation must not re-seed the live session
	require.NoError(t, store.Save(context.Background(), "alice", "User is vegetarian"))
	s2 := m.GetOrCreate(context.Background(), "alice")
	assert.Same(t, s1, s2)
	assert.Equal(t, 2, s2.Len())
}

func TestGetOrCreate_SlowSeedDoesNotBlockOtherUsers(t *testing.T) {
	store := &blockingStore{
		user:    "slow",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	m := NewManager(store, nil)

	done := make(chan *core.Session)
	go func() { done <- m.GetOrCreate(context.Background(), "slow") }()
	<-store.started

	// another user's session is created while the slow load is in flight
	fast := m.GetOrCreate(context.Background(), "fast")
	assert.Equal(t, 2, fast.Len())

	close(store.release)
	slow := <-done
	assert.Equal(t, 2, slow.Len())
	assert.Equal(t, 2, m.Len())
}

func TestGetOrCreate_RestartSeesSavedPreference(t *testing.T) {
	store := preference.NewInMemoryStore()

	m1 := NewManager(store, nil)
	require.Equal(t, 2, m1.GetOrCreate(context.Background(), "alice").Len())
	require.NoError(t, store.Save(context.Background(), "alice", "User is vegetarian"))

	// a fresh manager over the same store simulates a process restart
	m2 := NewManager(store, nil)
	turns := m2.GetOrCreate(context.Background(), "alice").Turns()
	require.Len(t, turns, 4)
	assert.Contains(t, turns[2].Text(), "User is vegetarian")
}

func TestGetOrCreate_ConcurrentSameUser(t *testing.T) {
	m := NewManager(preference.NewInMemoryStore(), nil)

	const n = 32
	sessions := make([]*core.Session, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = m.GetOrCreate(context.Background(), "alice")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, sessions[0], sessions[i])
	}
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, sessions[0].Len())
}
