// pkg/memcache/affirmation_cache.go
package memcache

import (
	"sync"
	"time"
)

// AffirmationCache keeps one generated affirmation per user per calendar day,
// so the text-generation collaborator is called at most once a day per user.
type AffirmationCache interface {
	Set(userID string, text string, ttl time.Duration)
	Get(userID string) (string, bool)
}

type affirmationEntry struct {
	text      string
	expiresAt time.Time
}

type Affirmations struct {
	mu   sync.RWMutex
	data map[string]affirmationEntry
}

func NewAffirmations() *Affirmations {
	return &Affirmations{
		data: make(map[string]affirmationEntry),
	}
}

func (s *Affirmations) Set(userID string, text string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = affirmationEntry{
		text:      text,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Affirmations) Get(userID string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[userID]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		// A Set may have replaced the entry between the two locks; only drop
		// it if it is still expired.
		if cur, ok := s.data[userID]; ok && time.Now().After(cur.expiresAt) {
			delete(s.data, userID)
		}
		s.mu.Unlock()
		return "", false
	}
	return e.text, true
}
