package processor

import (
	"fmt"

	"github.com/phambaophuc/texture-resizer/internal/config"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

// NewFromConfig builds a processor whose resizer uses the configured scalers
// and pixel limit.
func NewFromConfig(cfg config.ResizerConfig) (*ImageProcessor, error) {
	bitmapScaler, err := resizer.ScalerByName(cfg.BitmapScaler)
	if err != nil {
		return nil, fmt.Errorf("bitmap scaler: %w", err)
	}
	bufferScaler, err := resizer.ScalerByName(cfg.BufferScaler)
	if err != nil {
		return nil, fmt.Errorf("buffer scaler: %w", err)
	}

	r := resizer.New(
		resizer.WithMaxPixels(cfg.MaxPixels),
		resizer.WithBitmapScaler(bitmapScaler),
		resizer.WithBufferScaler(bufferScaler),
	)
	return NewImageProcessor(r, cfg.AutoOrient), nil
}

// MaxPixels reports the pixel limit applied to decoded sources and resize targets.
func (p *ImageProcessor) MaxPixels() int {
	return p.resizer.MaxPixels()
}
