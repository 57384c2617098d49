package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"hotel_gateway/model"

	"github.com/redis/go-redis/v9"
)

// Key prefixes mirror the names of the persisted client records: "user"
// for the session/profile/token and "reservation" for the booking intent.
const (
	sessionPrefix = "user:"
	intentPrefix  = "reservation:"
	eventPrefix   = "events:"
)

type sessionEntry struct {
	data      model.SessionData
	expiresAt time.Time
}

type intentEntry struct {
	intent    model.BookingIntent
	expiresAt time.Time
}

// Store holds authenticated sessions and their pending booking intents.
// Redis is the persistence tier; an in-memory map fronts it so lookups on
// a warm session skip the round trip, and a missing Redis degrades to
// memory-only storage. Last write wins: one session is one browser tab.
type Store struct {
	rdb *redis.Client
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]sessionEntry
	intents  map[string]intentEntry
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{
		rdb:      rdb,
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
		intents:  make(map[string]intentEntry),
	}
}

// SetSession records a session at login.
func (s *Store) SetSession(ctx context.Context, id string, data model.SessionData) error {
	s.mu.Lock()
	s.sessions[id] = sessionEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	if s.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionPrefix+id, raw, s.ttl).Err()
}

// GetSession resolves a session id to its stored token and profile.
func (s *Store) GetSession(ctx context.Context, id string) (model.SessionData, bool) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.data, true
	}

	if s.rdb == nil {
		return model.SessionData{}, false
	}
	raw, err := s.rdb.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		return model.SessionData{}, false
	}
	var data model.SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("session: corrupt session record %s: %v", id, err)
		return model.SessionData{}, false
	}

	s.mu.Lock()
	s.sessions[id] = sessionEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return data, true
}

// ClearSession drops the session and its booking intent (logout).
func (s *Store) ClearSession(ctx context.Context, id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	if s.rdb != nil {
		s.rdb.Del(ctx, sessionPrefix+id)
	}
	s.ClearIntent(ctx, id)
}

// SetIntent records the room a session intends to book. At most one intent
// exists per session; a new one replaces the old.
func (s *Store) SetIntent(ctx context.Context, id string, intent model.BookingIntent) error {
	s.mu.Lock()
	s.intents[id] = intentEntry{intent: intent, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	if s.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, intentPrefix+id, raw, s.ttl).Err()
}

// GetIntent reports the pending booking intent, if any.
func (s *Store) GetIntent(ctx context.Context, id string) (model.BookingIntent, bool) {
	s.mu.RLock()
	entry, ok := s.intents[id]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.intent, true
	}

	if s.rdb == nil {
		return model.BookingIntent{}, false
	}
	raw, err := s.rdb.Get(ctx, intentPrefix+id).Bytes()
	if err != nil {
		return model.BookingIntent{}, false
	}
	var intent model.BookingIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		log.Printf("session: corrupt intent record %s: %v", id, err)
		return model.BookingIntent{}, false
	}

	s.mu.Lock()
	s.intents[id] = intentEntry{intent: intent, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return intent, true
}

// ClearIntent deletes the pending intent (successful submission or
// explicit cancellation).
func (s *Store) ClearIntent(ctx context.Context, id string) {
	s.mu.Lock()
	delete(s.intents, id)
	s.mu.Unlock()

	if s.rdb != nil {
		s.rdb.Del(ctx, intentPrefix+id)
	}
}

// PublishRefresh tells the session's open views to reload reservations.
// No-op without Redis; clients fall back to polling.
func (s *Store) PublishRefresh(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Publish(ctx, eventPrefix+id, "reservation.refresh").Err(); err != nil {
		log.Printf("session: publish refresh failed: %v", err)
	}
}

// Subscribe opens the session's refresh-event channel, or nil without Redis.
func (s *Store) Subscribe(ctx context.Context, id string) *redis.PubSub {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Subscribe(ctx, eventPrefix+id)
}

// Sweep drops expired entries from the memory tier. Redis handles its own
// TTLs; this only bounds the cache maps.
func (s *Store) Sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
	for id, entry := range s.intents {
		if now.After(entry.expiresAt) {
			delete(s.intents, id)
		}
	}
}
