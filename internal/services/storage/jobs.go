package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phambaophuc/texture-resizer/internal/models"
)

const jobKeyPrefix = "job:"

// SaveJob stores the job record for the cache duration.
func (s *StorageService) SaveJob(ctx context.Context, job *models.ProcessingJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	return s.redisClient.Set(ctx, jobKeyPrefix+job.ID, data, s.cacheDuration).Err()
}

// GetJob loads a job record. It returns nil, nil when the job is unknown.
func (s *StorageService) GetJob(ctx context.Context, id string) (*models.ProcessingJob, error) {
	data, err := s.GetFromCache(ctx, jobKeyPrefix+id)
	if err != nil || data == nil {
		return nil, err
	}

	var job models.ProcessingJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}
