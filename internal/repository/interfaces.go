package repository

import (
	"context"
	"errors"
	"time"

	"tinylink/internal/model"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique key is already taken
	ErrConflict = errors.New("conflicting record exists")
	// ErrCacheMiss is returned when a key is absent from the cache
	ErrCacheMiss = errors.New("cache miss")
)

// StoreInterface defines the durable store operations. The unique keys on
// links.short_code and dedup_entries.url_hash make PutAtomic the uniqueness
// gate for concurrent creators.
type StoreInterface interface {
	GetByCode(ctx context.Context, shortCode string) (*model.Link, error)
	GetDedup(ctx context.Context, urlHash string) (*model.DedupEntry, error)
	PutAtomic(ctx context.Context, link *model.Link, dedup *model.DedupEntry) error
	Deactivate(ctx context.Context, shortCode string) error
	ReleaseHash(ctx context.Context, urlHash string) error
	SaveClickEvent(ctx context.Context, event *model.ClickEvent) error
	CountClickEvents(ctx context.Context, shortCode string) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
	Close() error
}

// CacheInterface defines the Redis cache layer: the url and dedup
// namespaces, the shared sequence allocator, click counters and rate-limit
// windows. Single-key atomic only; every entry expires server-side.
type CacheInterface interface {
	GetURL(ctx context.Context, shortCode string) (*CachedURL, error)
	SetURL(ctx context.Context, shortCode string, entry *CachedURL, ttl time.Duration) error
	DeleteURL(ctx context.Context, shortCode string) error
	GetDedup(ctx context.Context, urlHash string) (string, error)
	SetDedup(ctx context.Context, urlHash, shortCode string, ttl time.Duration) error
	DeleteDedup(ctx context.Context, urlHash string) error
	NextSequence(ctx context.Context) (int64, error)
	IncrementClicks(ctx context.Context, shortCode string) (int64, error)
	GetClicks(ctx context.Context, shortCode string) (int64, error)
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Close() error
}
