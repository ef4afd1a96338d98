package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
	"github.com/phambaophuc/texture-resizer/internal/services/storage"
	"github.com/phambaophuc/texture-resizer/pkg/utils"
)

// === REQUEST PARSING ===

func (h *ImageHandler) parseResizeParams(c *gin.Context) (*models.ResizeRequest, error) {
	width, err := h.parseInt(c.PostForm("width"), "width")
	if err != nil {
		return nil, err
	}

	height, err := h.parseInt(c.PostForm("height"), "height")
	if err != nil {
		return nil, err
	}

	req := &models.ResizeRequest{
		Width:   width,
		Height:  height,
		Quality: h.parseQuality(c.PostForm("quality")),
		Format:  c.PostForm("format"),
	}

	if value := c.PostForm("scale"); value != "" {
		scale, err := strconv.ParseFloat(value, 64)
		if err != nil || scale <= 0 {
			return nil, fmt.Errorf("invalid scale: must be a positive number")
		}
		req.Scale = scale
	}

	if value := c.PostForm("orientation"); value != "" {
		orientation, err := h.parseInt(value, "orientation")
		if err != nil {
			return nil, err
		}
		req.Orientation = orientation
	}

	return req, nil
}

func (h *ImageHandler) parseMultipartFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(h.config.Storage.MaxFileSize * 10); err != nil {
		return nil, fmt.Errorf("failed to parse form data: %v", err)
	}

	files := c.Request.MultipartForm.File[imagesParamKey]
	if len(files) == 0 {
		return nil, fmt.Errorf("no images provided")
	}

	return files, nil
}

// parseInt accepts any integer; range checks belong to the resizer so that
// zero or negative sizes surface as invalid input.
func (h *ImageHandler) parseInt(value, fieldName string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("%s is required", fieldName)
	}

	num, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", fieldName)
	}

	return num, nil
}

func (h *ImageHandler) parseQuality(value string) int {
	if value == "" {
		return defaultQuality
	}

	quality, err := strconv.Atoi(value)
	if err != nil || quality < 1 || quality > 100 {
		return defaultQuality
	}

	return quality
}

// === FILE OPERATIONS ===

func (h *ImageHandler) getUploadedFile(c *gin.Context, paramKey string) (multipart.File, *multipart.FileHeader, error) {
	return c.Request.FormFile(paramKey)
}

func (h *ImageHandler) readFiles(files []*multipart.FileHeader) ([][]byte, error) {
	data := make([][]byte, len(files))

	for i, fh := range files {
		if fh.Size > h.config.Storage.MaxFileSize {
			return nil, fmt.Errorf("%s exceeds maximum size of %d bytes", fh.Filename, h.config.Storage.MaxFileSize)
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %v", fh.Filename, err)
		}
		data[i], err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", fh.Filename, err)
		}
	}

	return data, nil
}

// readBody returns *http.MaxBytesError once the body passes limit.
func (h *ImageHandler) readBody(c *gin.Context, limit int64) ([]byte, error) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	defer body.Close()

	return io.ReadAll(body)
}

// === RESPONSE HANDLING ===

func (h *ImageHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *ImageHandler) respondResizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resizer.ErrInvalidInput):
		h.respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, resizer.ErrAllocation):
		h.respondError(c, http.StatusRequestEntityTooLarge, err.Error())
	default:
		h.logger.Error("Processing failed", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to process image")
	}
}

func (h *ImageHandler) respondWithImage(c *gin.Context, data []byte, contentType string, req *models.ResizeRequest, cacheStatus string) {
	c.Header("X-Image-Width", strconv.Itoa(req.Width))
	c.Header("X-Image-Height", strconv.Itoa(req.Height))
	c.Header("X-Cache", cacheStatus)
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxCacheAge))
	c.Data(http.StatusOK, contentType, data)
}

func (h *ImageHandler) respondWithURL(
	c *gin.Context,
	data []byte,
	header *multipart.FileHeader,
	format string,
	req *models.ResizeRequest,
) {
	imageURL := h.uploadToStorage(c.Request.Context(), data, header.Filename, format)

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: models.ProcessedImage{
			ID:          uuid.New().String(),
			OriginalURL: header.Filename,
			URL:         imageURL,
			FileSize:    int64(len(data)),
			ProcessedAt: time.Now(),
			Size:        resizeSize(req, format),
		},
	})
}

// === PROCESSING LOGIC ===

func (h *ImageHandler) processAndRespond(c *gin.Context, file multipart.File, header *multipart.FileHeader, req *models.ResizeRequest) {
	if err := h.processor.ValidateImage(file, h.config.Storage.MaxFileSize); err != nil {
		h.respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid image: %v", err))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Internal file error")
		return
	}

	returnURL := c.PostForm("return_url") == "true"
	cacheKey := storage.GenerateCacheKey(data, req)

	if cached, found := h.tryGetFromCache(c.Request.Context(), cacheKey); found {
		contentType := utils.DetectImageType(cached)
		if returnURL {
			h.respondWithURL(c, cached, header, formatFromContentType(contentType), req)
			return
		}
		h.respondWithImage(c, cached, contentType, req, "HIT")
		return
	}

	buffer, format, _, err := h.processor.ResizeImage(data, req)
	if err != nil {
		h.respondResizeError(c, err)
		return
	}

	h.setCacheData(c.Request.Context(), cacheKey, buffer.Bytes())

	if returnURL {
		h.respondWithURL(c, buffer.Bytes(), header, format, req)
		return
	}
	h.respondWithImage(c, buffer.Bytes(), "image/"+format, req, "MISS")
}

// === UTILITY METHODS ===

func (h *ImageHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}

func resizeSize(req *models.ResizeRequest, format string) models.ResizeSize {
	return models.ResizeSize{
		Width:       req.Width,
		Height:      req.Height,
		Quality:     req.Quality,
		Format:      format,
		Scale:       req.Scale,
		Orientation: req.Orientation,
	}
}

func formatFromContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return models.FormatPNG
	case "image/gif":
		return models.FormatGIF
	case "image/bmp":
		return models.FormatBMP
	case "image/webp":
		return models.FormatWebP
	case "image/tiff":
		return models.FormatTIFF
	default:
		return models.FormatJPEG
	}
}

func (h *ImageHandler) buildBatchResponse(ctx context.Context, images []models.BatchImage, files []*multipart.FileHeader, req *models.ResizeRequest) models.BatchResponse {
	response := models.BatchResponse{
		Size:   resizeSize(req, req.Format),
		Images: make([]models.ImageResponse, len(images)),
	}

	names := make([]string, len(images))
	for i, img := range images {
		if img.Buffer != nil {
			names[i] = utils.ReplaceExt(files[i].Filename, img.Format)
		}
	}

	urls := make([]string, len(images))
	if h.storage != nil {
		uploaded, err := h.storage.UploadBatch(ctx, names, images)
		if err != nil {
			h.logger.Warn("Failed to upload batch", zap.Error(err))
		}
		copy(urls, uploaded)
	}

	now := time.Now()
	for i, img := range images {
		item := models.ImageResponse{Filename: files[i].Filename}
		if img.Buffer == nil {
			item.Error = img.Error
			response.Failed++
		} else {
			item.URL = urls[i]
			item.FileSize = img.FileSize
			item.ProcessedAt = now
		}
		response.Images[i] = item
	}

	return response
}

// === STORAGE OPERATIONS ===

func (h *ImageHandler) uploadToStorage(ctx context.Context, data []byte, filename, format string) string {
	if h.storage == nil {
		return ""
	}

	url, err := h.storage.Upload(ctx, data, utils.ReplaceExt(filename, format), "image/"+format)
	if err != nil {
		h.logger.Warn("Failed to upload to Storage", zap.Error(err))
		return ""
	}

	return url
}

func (h *ImageHandler) tryGetFromCache(ctx context.Context, cacheKey string) ([]byte, bool) {
	if h.storage == nil {
		return nil, false
	}

	cachedData, err := h.storage.GetFromCache(ctx, cacheKey)
	if err != nil || cachedData == nil {
		return nil, false
	}

	h.logger.Info("Cache hit", zap.String("cache_key", cacheKey))
	return cachedData, true
}

func (h *ImageHandler) setCacheData(ctx context.Context, cacheKey string, data []byte) {
	if h.storage == nil {
		return
	}

	if err := h.storage.SetCache(ctx, cacheKey, data); err != nil {
		h.logger.Warn("Failed to cache data", zap.String("cache_key", cacheKey), zap.Error(err))
	}
}
