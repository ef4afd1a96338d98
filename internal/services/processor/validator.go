package processor

import (
	"fmt"
	"image"
	"io"

	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

// ValidateImage checks the size of r and that its header decodes as an
// image. r is rewound afterwards.
func (p *ImageProcessor) ValidateImage(r io.ReadSeeker, maxSize int64) error {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("failed to determine file size: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if size == 0 {
		return fmt.Errorf("%w: empty file", resizer.ErrInvalidInput)
	}
	if size > maxSize {
		return fmt.Errorf("%w: file size %d exceeds maximum allowed size %d", resizer.ErrInvalidInput, size, maxSize)
	}

	if _, _, err := image.DecodeConfig(r); err != nil {
		return fmt.Errorf("%w: invalid image format: %v", resizer.ErrInvalidInput, err)
	}

	_, err = r.Seek(0, io.SeekStart)
	return err
}
