package api

import (
	"fmt"
	"sync"

	"fishcast/advisory"
	"fishcast/models"
)

// SessionStore holds the advisory sessions by coordinate key. Both the HTTP
// server and the background refresher operate on the same store, so a spot
// kept warm by the refresher is served without a fresh load.
type SessionStore struct {
	sessions map[string]*advisory.Session
	mutex    sync.RWMutex
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*advisory.Session),
	}
}

// CoordsKey renders the store key for a coordinate pair. Four decimals keep
// nearby requests (~10 m) on the same session.
func CoordsKey(c models.Coords) string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lon)
}

// GetOrCreate returns the session for a coordinate key, creating it with the
// provided constructor when absent.
func (s *SessionStore) GetOrCreate(key string, create func() *advisory.Session) *advisory.Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if session, ok := s.sessions[key]; ok {
		return session
	}
	session := create()
	s.sessions[key] = session
	return session
}

// Get retrieves the session for a coordinate key.
func (s *SessionStore) Get(key string) (*advisory.Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, ok := s.sessions[key]
	return session, ok
}

// Keys returns all coordinate keys with a session.
func (s *SessionStore) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.sessions))
	for k := range s.sessions {
		keys = append(keys, k)
	}
	return keys
}
