package storage

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/phambaophuc/texture-resizer/internal/config"
)

// ErrNotConfigured is returned by bucket operations when no Supabase project
// is configured.
var ErrNotConfigured = errors.New("storage bucket not configured")

type StorageService struct {
	sbClient      *storage_go.Client
	redisClient   *redis.Client
	bucket        string
	cacheDuration time.Duration
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	var sbClient *storage_go.Client
	if cfg.Supabase.URL != "" && cfg.Supabase.BUCKET != "" {
		sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &StorageService{
		sbClient:      sbClient,
		redisClient:   redisClient,
		bucket:        cfg.Supabase.BUCKET,
		cacheDuration: cfg.Storage.CacheDuration,
	}, nil
}

// Close releases the Redis connection pool.
func (s *StorageService) Close() error {
	return s.redisClient.Close()
}
