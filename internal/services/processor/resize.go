package processor

import (
	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

func (p *ImageProcessor) resizeBitmap(img *resizer.BitmapImage, req *models.ResizeRequest) (*resizer.BitmapImage, error) {
	return p.resizer.ResizeBitmap(resizer.Size{Width: req.Width, Height: req.Height}, img)
}

// ResizeBuffer resizes a raw pixel buffer, keeping its pixel format.
func (p *ImageProcessor) ResizeBuffer(buf *resizer.PixelBufferImage, size resizer.Size) (*resizer.PixelBufferImage, error) {
	return p.resizer.ResizePixelBuffer(size, buf)
}
