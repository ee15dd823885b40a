package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys for directory aggregations.
const (
	CacheKeySpecialties    = "directory:specialties"
	CacheKeyRooms          = "directory:rooms"
	CacheKeySpecialtyStats = "directory:specialty-stats"
)

// DirectoryCache keeps directory aggregations (specialty list, room list,
// statistics) in Redis. The doctor snapshot is immutable for the process
// lifetime, so entries only expire by TTL. Every cache failure degrades
// to a recompute, never to a request failure.
type DirectoryCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewDirectoryCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

// Get loads key into dest. Returns false on miss or any cache error.
func (c *DirectoryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Directory cache read failed for %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Directory cache entry %s corrupt, dropping: %v", key, err)
		c.client.Del(ctx, key)
		return false
	}
	return true
}

// Set stores value under key with the configured TTL. Failures are logged
// and otherwise ignored.
func (c *DirectoryCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Directory cache marshal failed for %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Directory cache write failed for %s: %v", key, err)
	}
}
