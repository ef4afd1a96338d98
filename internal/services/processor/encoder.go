package processor

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/phambaophuc/texture-resizer/internal/models"
)

// encodeImage writes img in format and returns the format actually written.
// x/image only decodes WebP, so WebP requests are written as PNG.
func (p *ImageProcessor) encodeImage(w io.Writer, img image.Image, format string, quality int) (string, error) {
	switch format {
	case models.FormatJPEG, "jpg":
		return models.FormatJPEG, jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case models.FormatPNG, models.FormatWebP:
		return models.FormatPNG, png.Encode(w, img)
	case models.FormatGIF:
		return models.FormatGIF, gif.Encode(w, img, nil)
	case models.FormatBMP:
		return models.FormatBMP, bmp.Encode(w, img)
	case models.FormatTIFF:
		return models.FormatTIFF, tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return models.FormatJPEG, jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
}
