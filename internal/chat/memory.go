package chat

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"ai-health-platform/internal/intent"
)

const (
	// maxSessions bounds how many anonymous sessions are kept in memory.
	maxSessions = 256
	// maxSessionTurns bounds the per-session history window.
	maxSessionTurns = 20
)

// SessionMemory keeps short conversation windows for anonymous sessions.
// Oldest sessions are evicted once maxSessions is reached.
type SessionMemory struct {
	cache *lru.Cache[string, []intent.Turn]
}

// NewSessionMemory creates the LRU-backed session store.
func NewSessionMemory() (*SessionMemory, error) {
	cache, err := lru.New[string, []intent.Turn](maxSessions)
	if err != nil {
		return nil, err
	}
	return &SessionMemory{cache: cache}, nil
}

// Turns returns the recorded history for a session, oldest first.
func (m *SessionMemory) Turns(sessionID string) []intent.Turn {
	turns, _ := m.cache.Get(sessionID)
	return turns
}

// Append records turns for a session, trimming to the most recent window.
func (m *SessionMemory) Append(sessionID string, turns ...intent.Turn) {
	existing, _ := m.cache.Get(sessionID)
	existing = append(existing, turns...)
	if len(existing) > maxSessionTurns {
		existing = existing[len(existing)-maxSessionTurns:]
	}
	m.cache.Add(sessionID, existing)
}
