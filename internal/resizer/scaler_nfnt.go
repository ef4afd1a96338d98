package resizer

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// NfntInterpolation selects a github.com/nfnt/resize interpolation function.
type NfntInterpolation int

const (
	NfntBilinear NfntInterpolation = iota
	NfntBicubic
	NfntLanczos3
)

type nfntScaler struct {
	name   string
	interp resize.InterpolationFunction
}

// NfntScaler returns a Scaler backed by github.com/nfnt/resize.
func NfntScaler(i NfntInterpolation) Scaler {
	switch i {
	case NfntBicubic:
		return &nfntScaler{name: "nfnt-bicubic", interp: resize.Bicubic}
	case NfntLanczos3:
		return &nfntScaler{name: "nfnt-lanczos3", interp: resize.Lanczos3}
	default:
		return &nfntScaler{name: "nfnt-bilinear", interp: resize.Bilinear}
	}
}

func (s *nfntScaler) String() string { return s.name }

func (s *nfntScaler) Resize(img image.Image, size Size) (image.Image, error) {
	m := resize.Resize(uint(size.Width), uint(size.Height), img, s.interp)
	// nfnt hands back the input unchanged when no scaling is needed.
	if m == img || m.Bounds().Min != (image.Point{}) {
		return imaging.Clone(m), nil
	}
	return m, nil
}
