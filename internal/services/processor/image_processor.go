package processor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

const (
	DefaultQuality = 85
	DefaultWorkers = 5
)

// ImageProcessor decodes uploaded images, resizes them and encodes the result.
type ImageProcessor struct {
	resizer    *resizer.Resizer
	autoOrient bool
}

func NewImageProcessor(r *resizer.Resizer, autoOrient bool) *ImageProcessor {
	if r == nil {
		r = resizer.New()
	}
	return &ImageProcessor{
		resizer:    r,
		autoOrient: autoOrient,
	}
}

// ProcessImage reads an encoded image from r and resizes it per req.
func (p *ImageProcessor) ProcessImage(r io.Reader, req *models.ResizeRequest) (*bytes.Buffer, string, *resizer.BitmapImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to read image: %w", err)
	}
	return p.ResizeImage(data, req)
}

// ResizeImage decodes data, resizes it to req's size and encodes it in the
// requested format, or the source format when none is given.
func (p *ImageProcessor) ResizeImage(data []byte, req *models.ResizeRequest) (*bytes.Buffer, string, *resizer.BitmapImage, error) {
	if req == nil {
		return nil, "", nil, fmt.Errorf("%w: missing resize request", resizer.ErrInvalidInput)
	}

	src, format, err := p.decodeBitmap(data, req)
	if err != nil {
		return nil, "", nil, err
	}

	resized, err := p.resizeBitmap(src, req)
	if err != nil {
		return nil, "", nil, err
	}

	buffer := &bytes.Buffer{}
	outputFormat, err := p.encodeImage(buffer, resized.Image, p.getOutputFormat(format, req), p.getQuality(req))
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buffer, outputFormat, resized, nil
}

func (p *ImageProcessor) getOutputFormat(originalFormat string, req *models.ResizeRequest) string {
	if req.Format != "" {
		return req.Format
	}
	return originalFormat
}

func (p *ImageProcessor) getQuality(req *models.ResizeRequest) int {
	if req.Quality > 0 {
		return min(100, max(1, req.Quality))
	}
	return DefaultQuality
}
