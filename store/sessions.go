package store

import (
	"path/filepath"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Sessions hands out one CartStore per session id, creating and hydrating it
// on first use. Stores are never shared across sessions.
type Sessions struct {
	mu      sync.Mutex
	carts   map[string]*CartStore
	factory func(sessionID string) Persister
}

func NewSessions(factory func(sessionID string) Persister) *Sessions {
	return &Sessions{
		carts:   make(map[string]*CartStore),
		factory: factory,
	}
}

func (s *Sessions) Cart(sessionID string) *CartStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}

	var p Persister
	if s.factory != nil {
		p = s.factory(sessionID)
	}
	cart := NewCartStore(p)
	s.carts[sessionID] = cart
	return cart
}

// Drop forgets the in-memory store for a session. The persisted mirror is
// left alone, so a later Cart call re-hydrates it.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// FileFactory persists each session's cart as <dir>/<sessionID>.json. Session
// ids are UUIDs minted by the session middleware, so they are safe as file
// names.
func FileFactory(dir string) func(sessionID string) Persister {
	return func(sessionID string) Persister {
		return NewFilePersister(filepath.Join(dir, sessionID+".json"))
	}
}

// RedisFactory persists each session's cart under cart:<sessionID>.
func RedisFactory(client *redis.Client) func(sessionID string) Persister {
	return func(sessionID string) Persister {
		return NewRedisPersister(client, "cart:"+sessionID)
	}
}
