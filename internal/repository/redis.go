package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tinylink/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes, one per cache namespace
	urlKeyPrefix    = "url:"
	dedupKeyPrefix  = "dedup:"
	clicksKeyPrefix = "clicks:"
	rateKeyPrefix   = "rl:"
	sequenceKey     = "seq:codes"
)

// CachedURL is the url-cache entry: enough to serve a redirect and check
// expiry without touching the durable store. Never authoritative.
type CachedURL struct {
	LongURL   string     `json:"long_url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// RedisCache implements CacheInterface on a Redis client
type RedisCache struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisCache creates a new Redis cache layer
func NewRedisCache(cfg *config.RedisConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisCache{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisCache) GetClient() *redis.Client {
	return r.client
}

// GetURL retrieves a url-cache entry
func (r *RedisCache) GetURL(ctx context.Context, shortCode string) (*CachedURL, error) {
	raw, err := r.client.Get(ctx, urlKeyPrefix+shortCode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var entry CachedURL
	if err := json.Unmarshal(raw, &entry); err != nil {
		// Corrupt entry, treat as a miss and drop it
		r.client.Del(ctx, urlKeyPrefix+shortCode)
		return nil, ErrCacheMiss
	}
	return &entry, nil
}

// SetURL stores a url-cache entry with the given TTL
func (r *RedisCache) SetURL(ctx context.Context, shortCode string, entry *CachedURL, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, urlKeyPrefix+shortCode, raw, ttl).Err()
}

// DeleteURL evicts a url-cache entry
func (r *RedisCache) DeleteURL(ctx context.Context, shortCode string) error {
	return r.client.Del(ctx, urlKeyPrefix+shortCode).Err()
}

// GetDedup retrieves the cached short code for a URL hash
func (r *RedisCache) GetDedup(ctx context.Context, urlHash string) (string, error) {
	code, err := r.client.Get(ctx, dedupKeyPrefix+urlHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return code, nil
}

// SetDedup caches the hash to short code mapping
func (r *RedisCache) SetDedup(ctx context.Context, urlHash, shortCode string, ttl time.Duration) error {
	return r.client.Set(ctx, dedupKeyPrefix+urlHash, shortCode, ttl).Err()
}

// DeleteDedup evicts a dedup-cache entry
func (r *RedisCache) DeleteDedup(ctx context.Context, urlHash string) error {
	return r.client.Del(ctx, dedupKeyPrefix+urlHash).Err()
}

// NextSequence atomically increments the shared code sequence. Safe under
// arbitrary concurrent callers across replicas; values are never reused.
func (r *RedisCache) NextSequence(ctx context.Context) (int64, error) {
	return r.client.Incr(ctx, sequenceKey).Result()
}

// IncrementClicks increments the approximate click counter for a short code
func (r *RedisCache) IncrementClicks(ctx context.Context, shortCode string) (int64, error) {
	return r.client.Incr(ctx, clicksKeyPrefix+shortCode).Result()
}

// GetClicks returns the approximate click count for a short code
func (r *RedisCache) GetClicks(ctx context.Context, shortCode string) (int64, error) {
	count, err := r.client.Get(ctx, clicksKeyPrefix+shortCode).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, err
	}
	return count, nil
}

// Allow implements a fixed-window rate limit counter. Returns true when the
// request fits inside the window budget.
func (r *RedisCache) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	windowID := time.Now().UnixNano() / int64(window)
	bucket := fmt.Sprintf("%s%s:%d", rateKeyPrefix, key, windowID)

	count, err := r.client.Incr(ctx, bucket).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		r.client.Expire(ctx, bucket, window)
	}
	return count <= int64(limit), nil
}

// Close closes the Redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}
