package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/config"
	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
	"github.com/phambaophuc/texture-resizer/internal/services/processor"
)

const (
	defaultQuality = 85
	maxCacheAge    = 3600
	imageParamKey  = "image"
	imagesParamKey = "images"
)

// ImageStore is the cache, bucket and job storage used by the handlers.
type ImageStore interface {
	GetFromCache(ctx context.Context, cacheKey string) ([]byte, error)
	SetCache(ctx context.Context, cacheKey string, data []byte) error
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
	UploadBatch(ctx context.Context, names []string, images []models.BatchImage) ([]string, error)
	SaveJob(ctx context.Context, job *models.ProcessingJob) error
	GetJob(ctx context.Context, id string) (*models.ProcessingJob, error)
	HealthCheck(ctx context.Context) map[string]string
	GetCacheStats(ctx context.Context) (map[string]interface{}, error)
}

// JobQueue accepts asynchronous resize jobs.
type JobQueue interface {
	PublishJob(ctx context.Context, job *models.ProcessingJob) error
	HealthCheck() string
	GetQueueStats() (map[string]interface{}, error)
}

type ImageHandler struct {
	processor *processor.ImageProcessor
	storage   ImageStore
	queue     JobQueue
	logger    *zap.Logger
	config    *config.Config
}

// NewImageHandler wires the handlers. storage and queue may be nil; the
// endpoints that need them then answer 503.
func NewImageHandler(
	processor *processor.ImageProcessor,
	storage ImageStore,
	queue JobQueue,
	logger *zap.Logger,
	config *config.Config,
) *ImageHandler {
	return &ImageHandler{
		processor: processor,
		storage:   storage,
		queue:     queue,
		logger:    logger,
		config:    config,
	}
}

// === MAIN API ENDPOINTS ===

// ResizeImage resizes one uploaded image and returns it, or its storage URL
// when return_url=true.
func (h *ImageHandler) ResizeImage(c *gin.Context) {
	file, header, err := h.getUploadedFile(c, imageParamKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	req, err := h.parseResizeParams(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.processAndRespond(c, file, header, req)
}

// BatchResize resizes every uploaded image to the same size.
func (h *ImageHandler) BatchResize(c *gin.Context) {
	files, err := h.parseMultipartFiles(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	req, err := h.parseResizeParams(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.readFiles(files)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	images := h.processor.BatchResize(data, req)
	response := h.buildBatchResponse(c.Request.Context(), images, files, req)

	c.JSON(http.StatusOK, models.APIResponse{
		Success: response.Failed < len(images),
		Data:    response,
	})
}

// ResizeBuffer resizes a raw pixel buffer sent as the request body and
// returns the resized buffer in the same pixel format.
func (h *ImageHandler) ResizeBuffer(c *gin.Context) {
	var req models.BufferResizeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid buffer parameters: "+err.Error())
		return
	}

	data, err := h.readBody(c, h.config.Storage.MaxBufferSize)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("pixel buffer exceeds maximum size of %d bytes", maxErr.Limit))
			return
		}
		h.logger.Warn("Failed to read pixel buffer", zap.Error(err))
		h.respondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	buf, size, err := processor.BufferFromRequest(&req, data)
	if err != nil {
		h.respondResizeError(c, err)
		return
	}

	out, err := h.processor.ResizeBuffer(buf, size)
	if err != nil {
		h.respondResizeError(c, err)
		return
	}

	c.Header("X-Pixel-Width", strconv.Itoa(out.Width))
	c.Header("X-Pixel-Height", strconv.Itoa(out.Height))
	c.Header("X-Pixel-Stride", strconv.Itoa(out.Stride))
	c.Header("X-Pixel-Format", out.Format.String())
	c.Data(http.StatusOK, "application/octet-stream", out.Pix)
}

// CreateJob queues an asynchronous resize of an image URL or bucket path.
func (h *ImageHandler) CreateJob(c *gin.Context) {
	if h.queue == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Job queue is not available")
		return
	}

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid job request: "+err.Error())
		return
	}

	now := time.Now()
	job := &models.ProcessingJob{
		ID:        uuid.New().String(),
		ImageURL:  req.ImageURL,
		Request:   req.Resize,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if h.storage != nil {
		if err := h.storage.SaveJob(c.Request.Context(), job); err != nil {
			h.logger.Warn("Failed to store pending job", zap.String("job_id", job.ID), zap.Error(err))
		}
	}

	if err := h.queue.PublishJob(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to publish job", zap.String("job_id", job.ID), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to queue job")
		return
	}

	c.JSON(http.StatusAccepted, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// GetJob returns the stored record of a job.
func (h *ImageHandler) GetJob(c *gin.Context) {
	if h.storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, "Job storage is not available")
		return
	}

	job, err := h.storage.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load job", zap.String("job_id", c.Param("id")), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil {
		h.respondError(c, http.StatusNotFound, "Job not found")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

// HealthCheck
func (h *ImageHandler) HealthCheck(c *gin.Context) {
	services := map[string]string{
		"redis":    "not configured",
		"supabase": "not configured",
		"queue":    "not configured",
	}
	if h.storage != nil {
		for k, v := range h.storage.HealthCheck(c.Request.Context()) {
			services[k] = v
		}
	}
	if h.queue != nil {
		services["queue"] = h.queue.HealthCheck()
	}

	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

func (h *ImageHandler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"scalers":    resizer.ScalerNames(),
		"max_pixels": h.processor.MaxPixels(),
		"timestamp":  time.Now(),
	}

	if h.queue != nil {
		queueStats, err := h.queue.GetQueueStats()
		if err != nil {
			h.logger.Error("Failed to get queue stats", zap.Error(err))
		}
		stats["queue"] = queueStats
	}

	if h.storage != nil {
		cacheStats, err := h.storage.GetCacheStats(c.Request.Context())
		if err != nil {
			h.logger.Error("Failed to get cache stats", zap.Error(err))
		}
		stats["cache"] = cacheStats
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}
