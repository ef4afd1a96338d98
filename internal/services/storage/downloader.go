package storage

import (
	"context"
	"fmt"
)

// Download fetches a file from the bucket.
func (s *StorageService) Download(ctx context.Context, path string) ([]byte, error) {
	if s.sbClient == nil {
		return nil, ErrNotConfigured
	}
	data, err := s.sbClient.DownloadFile(s.bucket, path)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", path, err)
	}
	return data, nil
}
