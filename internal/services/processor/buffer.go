package processor

import (
	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

// BufferFromRequest wraps raw pixel data described by req. The data is not
// copied.
func BufferFromRequest(req *models.BufferResizeRequest, data []byte) (*resizer.PixelBufferImage, resizer.Size, error) {
	format, err := resizer.ParsePixelFormat(req.Format)
	if err != nil {
		return nil, resizer.Size{}, err
	}

	stride := req.Stride
	if stride == 0 {
		stride = req.Width * format.BytesPerPixel()
	}

	buf := &resizer.PixelBufferImage{
		Width:  req.Width,
		Height: req.Height,
		Stride: stride,
		Format: format,
		Pix:    data,
	}
	if err := buf.Validate(); err != nil {
		return nil, resizer.Size{}, err
	}

	return buf, resizer.Size{Width: req.TargetWidth, Height: req.TargetHeight}, nil
}
