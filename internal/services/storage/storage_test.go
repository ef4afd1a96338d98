package storage_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phambaophuc/texture-resizer/internal/config"
	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/services/storage"
)

func TestGenerateCacheKey(t *testing.T) {
	src := []byte("frame")
	req := &models.ResizeRequest{Width: 512, Height: 1024, Format: "png"}

	key := storage.GenerateCacheKey(src, req)
	assert.True(t, strings.HasPrefix(key, "img_cache:"))
	assert.Equal(t, key, storage.GenerateCacheKey([]byte("frame"), &models.ResizeRequest{Width: 512, Height: 1024, Format: "png"}))

	assert.NotEqual(t, key, storage.GenerateCacheKey([]byte("other"), req))
	assert.NotEqual(t, key, storage.GenerateCacheKey(src, &models.ResizeRequest{Width: 512, Height: 1023, Format: "png"}))
	assert.NotEqual(t, key, storage.GenerateCacheKey(src, &models.ResizeRequest{Width: 512, Height: 1024, Format: "png", Scale: 2}))

	result := storage.GenerateResultKey(src, req)
	assert.True(t, strings.HasPrefix(result, "img_result:"))
	assert.Equal(t, strings.TrimPrefix(key, "img_cache:"), strings.TrimPrefix(result, "img_result:"))
}

func TestBucketOperationsWithoutSupabase(t *testing.T) {
	s, err := storage.NewStorageService(&config.Config{})
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, err = s.Upload(ctx, []byte("x"), "a.png", "image/png")
	assert.ErrorIs(t, err, storage.ErrNotConfigured)

	_, err = s.Download(ctx, "a.png")
	assert.ErrorIs(t, err, storage.ErrNotConfigured)

	assert.ErrorIs(t, s.Delete(ctx, "a.png"), storage.ErrNotConfigured)

	urls, err := s.UploadBatch(ctx, []string{"a.png", "b.png"}, []models.BatchImage{
		{Buffer: bytes.NewBufferString("a"), Format: "png"},
		{Error: "failed"},
	})
	assert.Error(t, err)
	assert.Equal(t, []string{"", ""}, urls)

	urls, err = s.UploadMultiple(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, urls)
}
