package utils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DownloadImage fetches an image over HTTP, reading at most maxSize bytes.
func DownloadImage(ctx context.Context, imageURL string, maxSize int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data: %w", err)
	}

	if len(imageData) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	if int64(len(imageData)) > maxSize {
		return nil, "", fmt.Errorf("image exceeds maximum size %d", maxSize)
	}

	contentType := DetectImageType(imageData)
	if !IsValidImageType(contentType) {
		return nil, "", fmt.Errorf("invalid content type: %s", contentType)
	}

	return imageData, contentType, nil
}

// DetectImageType sniffs the content type of data. Formats without a sniffing
// signature, such as TIFF, are identified from their image header.
func DetectImageType(data []byte) string {
	contentType := http.DetectContentType(data)
	if IsValidImageType(contentType) {
		return contentType
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return "image/" + format
	}
	return contentType
}

// IsRemoteURL reports whether location is an http(s) URL rather than a
// bucket path.
func IsRemoteURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// IsValidImageType checks if content type is a valid image type
func IsValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/bmp",
		"image/tiff",
	}

	ct := strings.ToLower(contentType)
	for _, validType := range validTypes {
		if strings.Contains(ct, validType) {
			return true
		}
	}
	return false
}

// GenerateFilename generates a unique filename for a resized image
func GenerateFilename(jobID, format string) string {
	timestamp := time.Now().Unix()
	if format == "" {
		format = "jpeg"
	}
	return fmt.Sprintf("resized_%s_%d.%s", jobID, timestamp, format)
}

// ReplaceExt swaps the extension of filename for format.
func ReplaceExt(filename, format string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "." + format
}

func GenerateStorageKey(filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filepath.Base(filename), ext)
	timestamp := time.Now().Unix()
	id := uuid.New().String()[:8]

	return fmt.Sprintf("resized/%s_%d_%s%s", name, timestamp, id, ext)
}
