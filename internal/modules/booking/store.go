// README: Session stores for in-progress bookings (in-memory and Redis).
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"skytaxi/internal/types"
)

// SessionStore persists sessions between requests. Save is a compare-and-set
// on Version: it fails with ErrConflict unless the stored version equals
// expectedVersion, and on success stores the session with Version+1.
type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id types.ID) (*Session, error)
	Save(ctx context.Context, s *Session, expectedVersion int) error
	Delete(ctx context.Context, id types.ID) error
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process; expired entries are evicted lazily.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[types.ID]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[types.ID]memoryEntry),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lookup(s.ID); ok {
		return fmt.Errorf("booking: session %s already exists: %w", s.ID, ErrConflict)
	}
	m.sessions[s.ID] = memoryEntry{session: *s, expiresAt: m.expiry()}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id types.ID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(id)
	if !ok {
		return nil, ErrNotFound
	}
	s := e.session
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(s.ID)
	if !ok {
		return ErrNotFound
	}
	if e.session.Version != expectedVersion {
		return ErrConflict
	}
	s.Version = expectedVersion + 1
	m.sessions[s.ID] = memoryEntry{session: *s, expiresAt: m.expiry()}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// lookup must be called with mu held.
func (m *MemoryStore) lookup(id types.ID) (memoryEntry, bool) {
	e, ok := m.sessions[id]
	if !ok {
		return memoryEntry{}, false
	}
	if m.ttl > 0 && !m.now().Before(e.expiresAt) {
		delete(m.sessions, id)
		return memoryEntry{}, false
	}
	return e, true
}

func (m *MemoryStore) expiry() time.Time {
	if m.ttl <= 0 {
		return time.Time{}
	}
	return m.now().Add(m.ttl)
}

const sessionKeyPrefix = "booking:session:"

// RedisStore keeps each session as a JSON string with a sliding TTL.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func sessionKey(id types.ID) string {
	return sessionKeyPrefix + string(id)
}

func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("booking: encode session: %w", err)
	}
	ok, err := r.redis.SetNX(ctx, sessionKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("booking: create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("booking: session %s already exists: %w", s.ID, ErrConflict)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id types.ID) (*Session, error) {
	return r.get(ctx, r.redis, id)
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *RedisStore) get(ctx context.Context, c getter, id types.ID) (*Session, error) {
	data, err := c.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("booking: get session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("booking: decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session, expectedVersion int) error {
	key := sessionKey(s.ID)
	err := r.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := r.get(ctx, tx, s.ID)
		if err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return ErrConflict
		}
		next := *s
		next.Version = expectedVersion + 1
		data, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("booking: encode session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.ttl)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	s.Version = expectedVersion + 1
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id types.ID) error {
	if err := r.redis.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("booking: delete session: %w", err)
	}
	return nil
}
