package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for cached legal documents
	documentPrefix = "legal:doc:"
	// Hash of download clicks keyed by platform
	downloadClicksKey = "downloads:clicks"
)

// RedisStore caches fetched legal documents and counts download clicks
type RedisStore struct {
	client *redis.Client
}

// CachedDocument is a successfully fetched legal document
type CachedDocument struct {
	Slug      string    `json:"slug"`
	Markdown  string    `json:"markdown"`
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewRedisStore creates a new Redis storage client
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
	}, nil
}

// StoreDocument caches a document until ttl elapses
func (s *RedisStore) StoreDocument(ctx context.Context, doc *CachedDocument, ttl time.Duration) error {
	if doc.Slug == "" {
		return errors.New("document slug is required")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := s.client.Set(ctx, documentPrefix+doc.Slug, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

// GetDocument returns the cached document for slug, or nil when absent
func (s *RedisStore) GetDocument(ctx context.Context, slug string) (*CachedDocument, error) {
	data, err := s.client.Get(ctx, documentPrefix+slug).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc CachedDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// RecordDownload increments the click counter for a platform
func (s *RedisStore) RecordDownload(ctx context.Context, platform string) (int64, error) {
	n, err := s.client.HIncrBy(ctx, downloadClicksKey, platform, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record download: %w", err)
	}
	return n, nil
}

// GetDownloadCounts returns click totals keyed by platform
func (s *RedisStore) GetDownloadCounts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, downloadClicksKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get download counts: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for platform, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid download count for %s: %w", platform, err)
		}
		counts[platform] = n
	}
	return counts, nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Health checks Redis connection health
func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
