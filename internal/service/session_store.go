package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionState is the serializable part of a Session. The pending
// question is not stored; it is recomputed from Remaining and Asked.
type SessionState struct {
	ID        string    `json:"id"`
	Remaining []string  `json:"remaining"`
	Asked     []string  `json:"asked"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore guarda el estado de sesiones de narrowing con expiracion.
type SessionStore interface {
	Save(ctx context.Context, state SessionState, ttl time.Duration) error
	Load(ctx context.Context, id string) (SessionState, error)
	Delete(ctx context.Context, id string) error
}

type memorySessionItem struct {
	state     SessionState
	expiresAt time.Time
}

type memorySessionStore struct {
	mu    sync.Mutex
	items map[string]memorySessionItem
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		items: make(map[string]memorySessionItem),
	}
}

func (s *memorySessionStore) Save(_ context.Context, state SessionState, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(state.ID) == "" {
		return ErrSessionNotFound
	}
	s.items[state.ID] = memorySessionItem{
		state:     cloneState(state),
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (s *memorySessionStore) Load(_ context.Context, id string) (SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return SessionState{}, ErrSessionNotFound
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(s.items, id)
		return SessionState{}, ErrSessionNotFound
	}
	return cloneState(item.state), nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func cloneState(state SessionState) SessionState {
	state.Remaining = append([]string(nil), state.Remaining...)
	state.Asked = append([]string(nil), state.Asked...)
	return state
}

type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSessionStore struct {
	client  redisKV
	prefix  string
	timeout time.Duration
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	if client == nil {
		return nil
	}
	return &redisSessionStore{
		client:  client,
		prefix:  "finder:session:",
		timeout: 500 * time.Millisecond,
	}
}

func (s *redisSessionStore) Save(ctx context.Context, state SessionState, ttl time.Duration) error {
	if strings.TrimSpace(state.ID) == "" {
		return ErrSessionNotFound
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Set(ctx, s.prefix+state.ID, payload, ttl).Err()
}

func (s *redisSessionStore) Load(ctx context.Context, id string) (SessionState, error) {
	if strings.TrimSpace(id) == "" {
		return SessionState{}, ErrSessionNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return SessionState{}, ErrSessionNotFound
	}
	if err != nil {
		return SessionState{}, err
	}
	var state SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return SessionState{}, err
	}
	return state, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Del(ctx, s.prefix+id).Err()
}
