package session

import (
	"context"
	"strings"
	"sync"

	"github.com/wayfarer-ai/wayfarer/core"
	"github.com/wayfarer-ai/wayfarer/logging"
)

// policyRule is the standing instruction injected as the first user turn of
// every session.
const policyRule = "SYSTEM_RULE: You are a helpful and expert travel planning agent. " +
	"Your goal is to help the user plan a trip to any city. " +
	"First, understand their preferences (like 'vegetarian' or 'museums'). " +
	"Then, use your tools (web_search, get_weather) to build a plan. " +
	"After you have presented the plan, ALWAYS proactively ask the user if they would also like help finding hotels OR flights for their trip. " +
	"CRITICAL RULE: You must *never* show your internal reasoning, thoughts, or the specific tools you are calling (e.g., 'Tool Call: web_search...'). " +
	"You must synthesize the information from your tools and present only the final, helpful answer directly to the user."

// policyAck is the scripted model acknowledgment paired with policyRule.
const policyAck = "Understood. I am a helpful travel agent. I will follow your rules."

// preferenceAck is the scripted model acknowledgment paired with the
// preference summary turn.
const preferenceAck = "Understood. I have loaded your preferences."

// Manager creates and caches one Session per user.
type Manager struct {
	mu      sync.Mutex // guards entries map access only
	entries map[string]*sessionEntry
	store   core.PreferenceStore
	logger  logging.Logger
}

// sessionEntry defers seeding out of the manager lock: the once blocks
// same-user callers until the session is fully seeded, while a slow
// preference load for one user never stalls session creation for others.
type sessionEntry struct {
	once    sync.Once
	session *core.Session
}

// NewManager constructs a Manager backed by the given preference store. A nil
// logger disables logging.
func NewManager(store core.PreferenceStore, logger logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Manager{
		entries: make(map[string]*sessionEntry),
		store:   store,
		logger:  logger,
	}
}

// GetOrCreate returns the session for userID, creating and seeding it on
// first use. Existing sessions are returned unchanged: preferences saved
// after creation do not re-seed a live conversation.
func (m *Manager) GetOrCreate(ctx context.Context, userID string) *core.Session {
	m.mu.Lock()
	e, ok := m.entries[userID]
	if !ok {
		e = &sessionEntry{}
		m.entries[userID] = e
	}
	m.mu.Unlock()

	e.once.Do(func() {
		s := core.NewSession(userID)
		s.Append(core.NewUserTurn(policyRule))
		s.Append(core.NewModelTurn(core.TextPart{Text: policyAck}))
		m.seedPreferences(ctx, s, userID)
		e.session = s
		m.logger.Info("session.created", "user_id", userID, "turns", s.Len())
	})
	return e.session
}

// seedPreferences appends the preference summary exchange when the user has
// stored preferences. Store failures are logged and swallowed: a session
// without memory beats no session at all.
func (m *Manager) seedPreferences(ctx context.Context, s *core.Session, userID string) {
	prefs, err := m.store.List(ctx, userID)
	if err != nil {
		m.logger.Warn("session.preferences.load_failed", "user_id", userID, "error", err)
		return
	}
	if len(prefs) == 0 {
		return
	}

	s.Append(core.NewUserTurn("Please remember these are my long-term preferences: " + strings.Join(prefs, "; ")))
	s.Append(core.NewModelTurn(core.TextPart{Text: preferenceAck}))
	m.logger.Info("session.preferences.loaded", "user_id", userID, "count", len(prefs))
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
