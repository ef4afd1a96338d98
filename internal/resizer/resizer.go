// Package resizer resizes images to an exact pixel size. It handles two image
// representations: BitmapImage, a high-level handle with presentation
// metadata, and PixelBufferImage, a raw strided buffer. Each is resized into
// a new value of the same representation.
//
// A Resizer holds only immutable configuration. It keeps no state between
// calls and is safe for concurrent use.
package resizer

import (
	"fmt"
	"image"
)

// DefaultMaxPixels caps the target pixel count when no limit is configured.
const DefaultMaxPixels = 64 << 20

// Resizer resizes bitmaps and pixel buffers using configurable scalers.
// The zero value is ready to use and behaves like New().
type Resizer struct {
	maxPixels    int
	bitmapScaler Scaler
	bufferScaler Scaler
}

// Option configures a Resizer.
type Option func(*Resizer)

// WithMaxPixels limits the number of pixels in a target image. Larger targets
// fail with ErrAllocation. Non-positive values restore the default.
func WithMaxPixels(n int) Option {
	return func(r *Resizer) {
		if n <= 0 {
			n = DefaultMaxPixels
		}
		r.maxPixels = n
	}
}

// WithBitmapScaler sets the scaler used by ResizeBitmap.
func WithBitmapScaler(s Scaler) Option {
	return func(r *Resizer) {
		if s != nil {
			r.bitmapScaler = s
		}
	}
}

// WithBufferScaler sets the scaler used by ResizePixelBuffer.
func WithBufferScaler(s Scaler) Option {
	return func(r *Resizer) {
		if s != nil {
			r.bufferScaler = s
		}
	}
}

// New returns a Resizer. Without options it resamples bilinearly, using
// imaging for bitmaps and x/image/draw for pixel buffers.
func New(opts ...Option) *Resizer {
	r := &Resizer{
		maxPixels:    DefaultMaxPixels,
		bitmapScaler: defaultBitmapScaler,
		bufferScaler: defaultBufferScaler,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultBitmapScaler = ImagingScaler(ImagingLinear)
	defaultBufferScaler = XDrawScaler(XDrawBiLinear)
	defaultResizer      = New()
)

// ResizeBitmap resizes img with the default Resizer.
func ResizeBitmap(size Size, img *BitmapImage) (*BitmapImage, error) {
	return defaultResizer.ResizeBitmap(size, img)
}

// ResizePixelBuffer resizes img with the default Resizer.
func ResizePixelBuffer(size Size, img *PixelBufferImage) (*PixelBufferImage, error) {
	return defaultResizer.ResizePixelBuffer(size, img)
}

// MaxPixels returns the configured target pixel limit.
func (r *Resizer) MaxPixels() int {
	if r.maxPixels <= 0 {
		return DefaultMaxPixels
	}
	return r.maxPixels
}

func (r *Resizer) bitmap() Scaler {
	if r.bitmapScaler == nil {
		return defaultBitmapScaler
	}
	return r.bitmapScaler
}

func (r *Resizer) buffer() Scaler {
	if r.bufferScaler == nil {
		return defaultBufferScaler
	}
	return r.bufferScaler
}

// ResizeBitmap returns a new bitmap of exactly size pixels resampled from img.
// Scale and orientation are carried over. img is not modified.
func (r *Resizer) ResizeBitmap(size Size, img *BitmapImage) (*BitmapImage, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	if err := img.validate(); err != nil {
		return nil, err
	}
	if _, err := checkAllocation(size, 4, r.MaxPixels()); err != nil {
		return nil, err
	}

	out, err := r.scale(r.bitmap(), img.Image, size)
	if err != nil {
		return nil, err
	}

	return &BitmapImage{
		Image:       out,
		Scale:       img.Scale,
		Orientation: img.Orientation,
	}, nil
}

// ResizePixelBuffer returns a new, tightly packed pixel buffer of exactly
// size pixels in img's pixel format. img is not modified.
func (r *Resizer) ResizePixelBuffer(size Size, img *PixelBufferImage) (*PixelBufferImage, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if _, err := checkAllocation(size, img.Format.BytesPerPixel(), r.MaxPixels()); err != nil {
		return nil, err
	}

	out, err := r.scale(r.buffer(), img.view(), size)
	if err != nil {
		return nil, err
	}

	dst, err := NewPixelBuffer(size, img.Format)
	if err != nil {
		return nil, err
	}
	dst.fill(out)
	return dst, nil
}

func (r *Resizer) scale(s Scaler, src image.Image, size Size) (image.Image, error) {
	out, err := s.Resize(src, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s resize to %s: %v", ErrAllocation, s, size, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s returned no image", ErrAllocation, s)
	}
	if got := sizeOf(out.Bounds()); got != size {
		return nil, fmt.Errorf("%w: %s produced %s, want %s", ErrAllocation, s, got, size)
	}
	return out, nil
}

// checkAllocation returns the byte count of a tightly packed size image with
// bpp bytes per pixel. maxPixels <= 0 disables the pixel limit.
func checkAllocation(size Size, bpp, maxPixels int) (int, error) {
	n, ok := size.pixels()
	if !ok {
		return 0, fmt.Errorf("%w: %s overflows pixel count", ErrAllocation, size)
	}
	if maxPixels > 0 && n > maxPixels {
		return 0, fmt.Errorf("%w: %s exceeds limit of %d pixels", ErrAllocation, size, maxPixels)
	}
	bytes, ok := mul(n, bpp)
	if !ok {
		return 0, fmt.Errorf("%w: %s overflows buffer size", ErrAllocation, size)
	}
	return bytes, nil
}
