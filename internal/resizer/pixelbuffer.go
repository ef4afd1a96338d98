package resizer

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// PixelFormat is the memory layout of one pixel in a PixelBufferImage.
type PixelFormat int

const (
	PixelFormatUnknown PixelFormat = iota
	// PixelFormatBGRA32 is 8-bit premultiplied B, G, R, A. Camera frames
	// arrive in this layout.
	PixelFormatBGRA32
	// PixelFormatRGBA32 is 8-bit premultiplied R, G, B, A.
	PixelFormatRGBA32
	// PixelFormatGray8 is a single 8-bit luma channel.
	PixelFormatGray8
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatBGRA32: "bgra32",
	PixelFormatRGBA32: "rgba32",
	PixelFormatGray8:  "gray8",
}

func (f PixelFormat) String() string {
	if name, ok := pixelFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// BytesPerPixel returns the pixel width in bytes, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatBGRA32, PixelFormatRGBA32:
		return 4
	case PixelFormatGray8:
		return 1
	default:
		return 0
	}
}

// ParsePixelFormat parses the lower-case name returned by String.
func ParsePixelFormat(s string) (PixelFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range pixelFormatNames {
		if name == s {
			return f, nil
		}
	}
	return PixelFormatUnknown, fmt.Errorf("%w: unknown pixel format %q", ErrInvalidInput, s)
}

// PixelBufferImage is a raw 2D pixel buffer. Row y starts at Pix[y*Stride].
type PixelBufferImage struct {
	Width  int
	Height int
	Stride int
	Format PixelFormat
	Pix    []byte
}

// NewPixelBuffer allocates a tightly packed buffer of the given size.
func NewPixelBuffer(size Size, format PixelFormat) (*PixelBufferImage, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("%w: unknown pixel format %s", ErrInvalidInput, format)
	}
	n, err := checkAllocation(size, bpp, 0)
	if err != nil {
		return nil, err
	}
	return &PixelBufferImage{
		Width:  size.Width,
		Height: size.Height,
		Stride: size.Width * bpp,
		Format: format,
		Pix:    make([]byte, n),
	}, nil
}

// Size reports the pixel dimensions of the buffer.
func (p *PixelBufferImage) Size() Size {
	if p == nil {
		return Size{}
	}
	return Size{Width: p.Width, Height: p.Height}
}

// Validate checks that the buffer's geometry is consistent with its data.
func (p *PixelBufferImage) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil pixel buffer", ErrInvalidInput)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: empty pixel buffer %dx%d", ErrInvalidInput, p.Width, p.Height)
	}
	bpp := p.Format.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("%w: unknown pixel format %s", ErrInvalidInput, p.Format)
	}
	row, ok := mul(p.Width, bpp)
	if !ok || p.Stride < row {
		return fmt.Errorf("%w: stride %d shorter than row of %d bytes", ErrInvalidInput, p.Stride, row)
	}
	// Last row may omit trailing padding.
	need, ok := mul(p.Stride, p.Height-1)
	if ok {
		need += row
	}
	if !ok || need < 0 || len(p.Pix) < need {
		return fmt.Errorf("%w: pixel data has %d bytes, need %d", ErrInvalidInput, len(p.Pix), need)
	}
	return nil
}

// view exposes the buffer as an image.Image. RGBA32 and Gray8 share memory
// with Pix; BGRA32 is swizzled into a new RGBA image.
func (p *PixelBufferImage) view() image.Image {
	rect := image.Rect(0, 0, p.Width, p.Height)
	switch p.Format {
	case PixelFormatGray8:
		return &image.Gray{Pix: p.Pix, Stride: p.Stride, Rect: rect}
	case PixelFormatRGBA32:
		return &image.RGBA{Pix: p.Pix, Stride: p.Stride, Rect: rect}
	default:
		dst := image.NewRGBA(rect)
		for y := 0; y < p.Height; y++ {
			swapRedBlue(dst.Pix[y*dst.Stride:y*dst.Stride+p.Width*4], p.Pix[y*p.Stride:])
		}
		return dst
	}
}

// fill writes img into p, converting to p's pixel format.
func (p *PixelBufferImage) fill(img image.Image) {
	rect := image.Rect(0, 0, p.Width, p.Height)
	switch p.Format {
	case PixelFormatGray8:
		dst := &image.Gray{Pix: p.Pix, Stride: p.Stride, Rect: rect}
		draw.Draw(dst, rect, img, img.Bounds().Min, draw.Src)
	case PixelFormatRGBA32:
		dst := &image.RGBA{Pix: p.Pix, Stride: p.Stride, Rect: rect}
		draw.Draw(dst, rect, img, img.Bounds().Min, draw.Src)
	default:
		dst := &image.RGBA{Pix: p.Pix, Stride: p.Stride, Rect: rect}
		draw.Draw(dst, rect, img, img.Bounds().Min, draw.Src)
		for y := 0; y < p.Height; y++ {
			row := p.Pix[y*p.Stride : y*p.Stride+p.Width*4]
			swapRedBlue(row, row)
		}
	}
}

// swapRedBlue copies len(dst) bytes of 4-byte pixels from src to dst,
// exchanging bytes 0 and 2 of each pixel. dst and src may alias.
func swapRedBlue(dst, src []byte) {
	for i := 0; i+3 < len(dst); i += 4 {
		r, g, b, a := src[i+2], src[i+1], src[i], src[i+3]
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}
