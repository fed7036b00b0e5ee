package memory

import (
	"sync"

	"ai-memoire-be/pkg/memoire"
	"ai-memoire-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps per-user conversation state in memory.
// Sessions are created lazily, never expire and never persist across
// restarts. Each operation is atomic; interleaved operations from
// concurrent requests for the same user remain last-write-wins, which
// is an accepted contract, not a bug to mask.
type SessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// loadOrCreate must be called with the mutex held.
func (r *SessionRepository) loadOrCreate(userID string) *store.Session {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Session)
	}
	session := &store.Session{UserID: userID}
	r.cache.Set(userID, session, cache.NoExpiration)
	return session
}

// Append records one conversational turn, evicting the oldest entry
// once the history exceeds its fixed bound.
func (r *SessionRepository) Append(userID, role, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.loadOrCreate(userID)
	session.History = append(session.History, store.ChatEntry{Role: role, Content: content})
	if overflow := len(session.History) - store.MaxHistoryEntries; overflow > 0 {
		session.History = session.History[overflow:]
	}
	r.cache.Set(userID, session, cache.NoExpiration)
}

// GetHistory returns a copy of the user's history, oldest first.
func (r *SessionRepository) GetHistory(userID string) []store.ChatEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.loadOrCreate(userID)
	history := make([]store.ChatEntry, len(session.History))
	copy(history, session.History)
	return history
}

// GetWorkflow reports the user's workflow position, if one has started.
func (r *SessionRepository) GetWorkflow(userID string) (store.Workflow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.loadOrCreate(userID)
	if session.Workflow == nil {
		return store.Workflow{}, false
	}
	return *session.Workflow, true
}

// SetWorkflow starts or moves the user's workflow position.
func (r *SessionRepository) SetWorkflow(userID, theme string, section memoire.SectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := r.loadOrCreate(userID)
	session.Workflow = &store.Workflow{Theme: theme, Section: section}
	r.cache.Set(userID, session, cache.NoExpiration)
}
