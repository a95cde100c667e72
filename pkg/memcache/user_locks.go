// pkg/memcache/user_locks.go
package memcache

import "sync"

// UserLockRegistry serializes recomputes per user. Two concurrent entry
// mutations for the same user must not interleave their recomputes, so the
// progress service holds the user's lock for the whole recompute pass.
type UserLockRegistry interface {
	Lock(userID string)
	Unlock(userID string)
}

// UserLocks holds one mutex per user id, created on first use and never
// evicted. A mutex is a few words, so the map stays small relative to the
// user table; a deployment needing eviction would also need cross-instance
// locking, which this in-process registry does not attempt.
type UserLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *UserLocks) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *UserLocks) Lock(userID string) {
	s.lockFor(userID).Lock()
}

func (s *UserLocks) Unlock(userID string) {
	s.lockFor(userID).Unlock()
}
