package resizer

import (
	"fmt"
	"image"
	"math"
)

// Size is a target size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect returns the rectangle anchored at the origin with the size's dimensions.
func (s Size) Rect() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

func (s Size) validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: target width %d must be positive", ErrInvalidInput, s.Width)
	}
	if s.Height <= 0 {
		return fmt.Errorf("%w: target height %d must be positive", ErrInvalidInput, s.Height)
	}
	return nil
}

// pixels returns Width*Height, or false if the product overflows int.
func (s Size) pixels() (int, bool) {
	return mul(s.Width, s.Height)
}

// mul multiplies two non-negative ints, reporting overflow.
func mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

func sizeOf(r image.Rectangle) Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}
