package sktai

import "sync"

// TokenStore keeps per-username token state. A cold store simply forces a
// login on next use; nothing survives process restarts.
type TokenStore interface {
	Get(username string) (*TokenData, bool)
	Put(data *TokenData)
	Evict(username string)
}

type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]TokenData
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]TokenData)}
}

// Get returns a snapshot copy so callers never share mutable state with the
// store.
func (s *MemoryTokenStore) Get(username string) (*TokenData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.tokens[username]
	if !ok {
		return nil, false
	}
	return &data, true
}

func (s *MemoryTokenStore) Put(data *TokenData) {
	if data == nil || data.Username == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[data.Username] = *data
}

func (s *MemoryTokenStore) Evict(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, username)
}
