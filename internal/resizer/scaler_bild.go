package resizer

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// BildFilter selects a github.com/anthonynsimon/bild/transform filter.
type BildFilter int

const (
	BildLinear BildFilter = iota
	BildLanczos
)

type bildScaler struct {
	name   string
	filter transform.ResampleFilter
}

// BildScaler returns a Scaler backed by github.com/anthonynsimon/bild.
// Output images are *image.RGBA.
func BildScaler(f BildFilter) Scaler {
	switch f {
	case BildLanczos:
		return &bildScaler{name: "bild-lanczos", filter: transform.Lanczos}
	default:
		return &bildScaler{name: "bild-linear", filter: transform.Linear}
	}
}

func (s *bildScaler) String() string { return s.name }

func (s *bildScaler) Resize(img image.Image, size Size) (image.Image, error) {
	return transform.Resize(img, size.Width, size.Height, s.filter), nil
}
