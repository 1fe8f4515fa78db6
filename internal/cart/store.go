package cart

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// SnapshotNamespace prefixes every persisted cart key.
const SnapshotNamespace = "cart-storage"

// SnapshotStore is the persistence port of the engine: one opaque blob per
// cart, written after every mutation, read once at construction.
// Last write wins; there is no conflict resolution.
type SnapshotStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, snapshot []byte) error
}

// RedisSnapshotStore keeps the cart blob under cart-storage:<session>.
type RedisSnapshotStore struct {
	client  *redis.Client
	session string
}

func NewRedisSnapshotStore(client *redis.Client, session string) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, session: session}
}

func (s *RedisSnapshotStore) key() string {
	return fmt.Sprintf("%s:%s", SnapshotNamespace, s.session)
}

func (s *RedisSnapshotStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}
	return data, nil
}

func (s *RedisSnapshotStore) Write(ctx context.Context, snapshot []byte) error {
	if err := s.client.Set(ctx, s.key(), snapshot, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	return nil
}

// MemorySnapshotStore backs carts that have no redis, and the tests.
type MemorySnapshotStore struct {
	snapshot []byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Read(ctx context.Context) ([]byte, error) {
	return s.snapshot, nil
}

func (s *MemorySnapshotStore) Write(ctx context.Context, snapshot []byte) error {
	s.snapshot = make([]byte, len(snapshot))
	copy(s.snapshot, snapshot)
	return nil
}
