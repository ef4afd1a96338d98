package processor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

// decodeBitmap decodes data into a bitmap carrying the scale and orientation
// from req, and reports the source format.
func (p *ImageProcessor) decodeBitmap(data []byte, req *models.ResizeRequest) (*resizer.BitmapImage, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty image data", resizer.ErrInvalidInput)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to decode image: %v", resizer.ErrInvalidInput, err)
	}
	// Sources count against the same pixel limit as targets.
	if limit := int64(p.resizer.MaxPixels()); int64(cfg.Width)*int64(cfg.Height) > limit {
		return nil, "", fmt.Errorf("%w: source %dx%d exceeds limit of %d pixels", resizer.ErrAllocation, cfg.Width, cfg.Height, limit)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(p.autoOrient))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to decode image: %v", resizer.ErrInvalidInput, err)
	}

	bitmap := resizer.NewBitmap(img)
	if req.Scale > 0 {
		bitmap.Scale = req.Scale
	}
	if req.Orientation != 0 {
		o := resizer.Orientation(req.Orientation)
		if !o.Valid() {
			return nil, "", fmt.Errorf("%w: orientation %d out of range", resizer.ErrInvalidInput, req.Orientation)
		}
		bitmap.Orientation = o
	}

	return bitmap, format, nil
}
