package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/services/storage"
	"github.com/phambaophuc/texture-resizer/pkg/utils"
)

func (q *QueueService) processJob(ctx context.Context, job *models.ProcessingJob) (*models.ProcessedImage, error) {
	imageData, err := q.fetchSource(ctx, job.ImageURL)
	if err != nil {
		return nil, err
	}

	cacheKey := storage.GenerateResultKey(imageData, &job.Request)

	cachedData, err := q.storage.GetFromCache(ctx, cacheKey)
	if err == nil && cachedData != nil {
		var cachedResult models.ProcessedImage
		if err := json.Unmarshal(cachedData, &cachedResult); err == nil {
			q.logger.Info("Cache hit", zap.String("job_id", job.ID))
			q.cacheHits.Add(1)
			cachedResult.ID = job.ID
			return &cachedResult, nil
		}
		q.logger.Warn("Failed to unmarshal cached data", zap.String("job_id", job.ID))
	}

	buffer, format, bitmap, err := q.processor.ResizeImage(imageData, &job.Request)
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	filename := utils.GenerateFilename(job.ID, format)
	resizedURL, err := q.storage.Upload(ctx, buffer.Bytes(), filename, "image/"+format)
	if err != nil {
		return nil, fmt.Errorf("failed to save resized image: %w", err)
	}

	size := bitmap.Size()
	result := &models.ProcessedImage{
		ID:          job.ID,
		OriginalURL: job.ImageURL,
		ProcessedAt: time.Now(),
		Size: models.ResizeSize{
			Width:       size.Width,
			Height:      size.Height,
			Quality:     job.Request.Quality,
			Format:      format,
			Scale:       bitmap.Scale,
			Orientation: int(bitmap.Orientation),
		},
		URL:      resizedURL,
		FileSize: int64(buffer.Len()),
	}

	resultBytes, _ := json.Marshal(result)
	if err := q.storage.SetCache(ctx, cacheKey, resultBytes); err != nil {
		q.logger.Warn("Failed to cache result", zap.Error(err))
	}

	return result, nil
}

// fetchSource downloads http(s) sources directly and everything else from
// the storage bucket.
func (q *QueueService) fetchSource(ctx context.Context, location string) ([]byte, error) {
	if utils.IsRemoteURL(location) {
		data, _, err := utils.DownloadImage(ctx, location, q.maxFileSize)
		if err != nil {
			return nil, err
		}
		return data, nil
	}

	data, err := q.storage.Download(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	return data, nil
}
