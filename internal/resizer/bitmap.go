package resizer

import (
	"fmt"
	"image"
	"reflect"
)

// Orientation is an EXIF-style orientation tag. It is presentation metadata
// only and is never applied to the pixels by this package.
type Orientation int

const (
	OrientationUp Orientation = iota + 1
	OrientationUpMirrored
	OrientationDown
	OrientationDownMirrored
	OrientationLeftMirrored
	OrientationRight
	OrientationRightMirrored
	OrientationLeft
)

// Valid reports whether o is one of the eight EXIF orientations.
func (o Orientation) Valid() bool {
	return o >= OrientationUp && o <= OrientationLeft
}

// BitmapImage is a high-level image handle: pixel data plus the scale and
// orientation it is meant to be presented with.
type BitmapImage struct {
	Image       image.Image
	Scale       float64
	Orientation Orientation
}

// NewBitmap wraps img with a scale of 1 and upright orientation.
func NewBitmap(img image.Image) *BitmapImage {
	return &BitmapImage{
		Image:       img,
		Scale:       1,
		Orientation: OrientationUp,
	}
}

// Size reports the pixel dimensions of the bitmap.
func (b *BitmapImage) Size() Size {
	if b == nil || isNilImage(b.Image) {
		return Size{}
	}
	return sizeOf(b.Image.Bounds())
}

func (b *BitmapImage) validate() error {
	if b == nil || isNilImage(b.Image) {
		return fmt.Errorf("%w: nil bitmap", ErrInvalidInput)
	}
	if b.Image.Bounds().Empty() {
		return fmt.Errorf("%w: empty bitmap", ErrInvalidInput)
	}
	return nil
}

// isNilImage also catches typed nil pointers such as (*image.RGBA)(nil),
// whose Bounds method would dereference nil.
func isNilImage(img image.Image) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
