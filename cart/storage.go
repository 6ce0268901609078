package cart

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Carts idle longer than this are dropped by Redis.
const cartTTL = 30 * 24 * time.Hour

// Storage persists serialized cart lines under a cart id. Load returns
// (nil, nil) when nothing is stored; absence is not an error.
type Storage interface {
	Load(ctx context.Context, cartID string) ([]byte, error)
	Save(ctx context.Context, cartID string, data []byte) error
	Delete(ctx context.Context, cartID string) error
}

// ── Redis-backed storage ─────────────────────────────────────────────────────

type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func key(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisStorage) Load(ctx context.Context, cartID string) ([]byte, error) {
	data, err := s.client.Get(ctx, key(cartID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStorage) Save(ctx context.Context, cartID string, data []byte) error {
	return s.client.Set(ctx, key(cartID), data, cartTTL).Err()
}

func (s *RedisStorage) Delete(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, key(cartID)).Err()
}

// ── In-memory storage ────────────────────────────────────────────────────────
// Fallback when Redis is unavailable, and the storage used by tests.

type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(ctx context.Context, cartID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.carts[cartID]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *MemoryStorage) Save(ctx context.Context, cartID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.carts[cartID] = cp
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}
