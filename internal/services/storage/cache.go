package storage

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/phambaophuc/texture-resizer/internal/models"
)

const (
	cacheKeyPrefix  = "img_cache:"
	resultKeyPrefix = "img_result:"
)

func (s *StorageService) GetFromCache(ctx context.Context, cacheKey string) ([]byte, error) {
	data, err := s.redisClient.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return data, nil
}

func (s *StorageService) SetCache(ctx context.Context, cacheKey string, data []byte) error {
	return s.redisClient.Set(ctx, cacheKey, data, s.cacheDuration).Err()
}

// GenerateCacheKey derives a cache key from the source bytes and every
// parameter that affects the resized output.
func GenerateCacheKey(source []byte, req *models.ResizeRequest) string {
	return cacheKeyPrefix + requestHash(source, req)
}

// GenerateResultKey is the key under which a finished job's metadata is
// cached. It never collides with GenerateCacheKey, which holds image bytes.
func GenerateResultKey(source []byte, req *models.ResizeRequest) string {
	return resultKeyPrefix + requestHash(source, req)
}

func requestHash(source []byte, req *models.ResizeRequest) string {
	hash := md5.New()
	hash.Write(source)

	if req != nil {
		hash.Write([]byte(fmt.Sprintf("resize_%d_%d_%d_%s_%g_%d",
			req.Width, req.Height, req.Quality, req.Format, req.Scale, req.Orientation)))
	}

	return fmt.Sprintf("%x", hash.Sum(nil))
}

// CleanupCache deletes cache entries that have lost their expiry.
func (s *StorageService) CleanupCache(ctx context.Context) error {
	for _, prefix := range []string{cacheKeyPrefix, resultKeyPrefix} {
		iter := s.redisClient.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			key := iter.Val()
			if ttl := s.redisClient.TTL(ctx, key).Val(); ttl == -1 {
				s.redisClient.Del(ctx, key)
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *StorageService) GetCacheStats(ctx context.Context) (map[string]interface{}, error) {
	info, err := s.redisClient.Info(ctx, "memory").Result()
	if err != nil {
		return nil, err
	}

	dbSize, err := s.redisClient.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"db_keys": dbSize,
		"info":    info,
	}

	return stats, nil
}
