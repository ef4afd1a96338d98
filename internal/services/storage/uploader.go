package storage

import (
	"bytes"
	"context"
	"fmt"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/phambaophuc/texture-resizer/pkg/utils"
)

// Upload stores data in the bucket under a unique key derived from filename
// and returns its public URL.
func (s *StorageService) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if s.sbClient == nil {
		return "", ErrNotConfigured
	}

	key := utils.GenerateStorageKey(filename)

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	return publicURL.SignedURL, nil
}

// Delete removes a file from the bucket.
func (s *StorageService) Delete(ctx context.Context, path string) error {
	if s.sbClient == nil {
		return ErrNotConfigured
	}
	_, err := s.sbClient.RemoveFile(s.bucket, []string{path})
	return err
}
