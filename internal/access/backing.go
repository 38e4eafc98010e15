package access

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Backing is the process-wide map that holds derived access entries
type Backing interface {
	Load(ctx context.Context, userID, projectID uuid.UUID) (*Entry, bool, error)
	Store(ctx context.Context, userID, projectID uuid.UUID, entry *Entry) error
	Remove(ctx context.Context, userID, projectID uuid.UUID) error
	RemoveUser(ctx context.Context, userID uuid.UUID) error
	RemoveProject(ctx context.Context, projectID uuid.UUID) error
}

type entryKey struct {
	userID    uuid.UUID
	projectID uuid.UUID
}

// MemoryBacking keeps entries in a mutex-guarded map
type MemoryBacking struct {
	mu      sync.RWMutex
	entries map[entryKey]*Entry
}

// NewMemoryBacking creates an empty in-process backing
func NewMemoryBacking() *MemoryBacking {
	return &MemoryBacking{entries: make(map[entryKey]*Entry)}
}

func (b *MemoryBacking) Load(_ context.Context, userID, projectID uuid.UUID) (*Entry, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	entry, ok := b.entries[entryKey{userID, projectID}]
	if !ok {
		return nil, false, nil
	}
	return entry.clone(), true, nil
}

func (b *MemoryBacking) Store(_ context.Context, userID, projectID uuid.UUID, entry *Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[entryKey{userID, projectID}] = entry.clone()
	return nil
}

func (b *MemoryBacking) Remove(_ context.Context, userID, projectID uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, entryKey{userID, projectID})
	return nil
}

func (b *MemoryBacking) RemoveUser(_ context.Context, userID uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.entries {
		if key.userID == userID {
			delete(b.entries, key)
		}
	}
	return nil
}

func (b *MemoryBacking) RemoveProject(_ context.Context, projectID uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.entries {
		if key.projectID == projectID {
			delete(b.entries, key)
		}
	}
	return nil
}

// Len returns the number of cached entries
func (b *MemoryBacking) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// RedisBacking shares entries across API replicas. Entries never expire;
// they are removed only through the invalidation calls.
type RedisBacking struct {
	client *redis.Client
	prefix string
}

// NewRedisBacking creates a backing storing JSON entries under prefix
func NewRedisBacking(client *redis.Client, prefix string) *RedisBacking {
	return &RedisBacking{client: client, prefix: prefix}
}

func (b *RedisBacking) key(userID, projectID uuid.UUID) string {
	return b.prefix + userID.String() + ":" + projectID.String()
}

func (b *RedisBacking) Load(ctx context.Context, userID, projectID uuid.UUID) (*Entry, bool, error) {
	data, err := b.client.Get(ctx, b.key(userID, projectID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read access entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to decode access entry: %w", err)
	}
	return &entry, true, nil
}

func (b *RedisBacking) Store(ctx context.Context, userID, projectID uuid.UUID, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode access entry: %w", err)
	}
	if err := b.client.Set(ctx, b.key(userID, projectID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write access entry: %w", err)
	}
	return nil
}

func (b *RedisBacking) Remove(ctx context.Context, userID, projectID uuid.UUID) error {
	return b.client.Del(ctx, b.key(userID, projectID)).Err()
}

func (b *RedisBacking) RemoveUser(ctx context.Context, userID uuid.UUID) error {
	return b.removeMatching(ctx, b.prefix+userID.String()+":*")
}

func (b *RedisBacking) RemoveProject(ctx context.Context, projectID uuid.UUID) error {
	return b.removeMatching(ctx, b.prefix+"*:"+projectID.String())
}

func (b *RedisBacking) removeMatching(ctx context.Context, pattern string) error {
	var keys []string
	iter := b.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan access entries: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return b.client.Del(ctx, keys...).Err()
}
