package resizer

import (
	"image"

	"github.com/disintegration/imaging"
)

// ImagingFilter selects a github.com/disintegration/imaging resampling filter.
type ImagingFilter int

const (
	ImagingLinear ImagingFilter = iota
	ImagingLanczos
	ImagingNearest
)

type imagingScaler struct {
	name   string
	filter imaging.ResampleFilter
}

// ImagingScaler returns a Scaler backed by github.com/disintegration/imaging.
// Output images are *image.NRGBA.
func ImagingScaler(f ImagingFilter) Scaler {
	switch f {
	case ImagingLanczos:
		return &imagingScaler{name: "imaging-lanczos", filter: imaging.Lanczos}
	case ImagingNearest:
		return &imagingScaler{name: "imaging-nearest", filter: imaging.NearestNeighbor}
	default:
		return &imagingScaler{name: "imaging-linear", filter: imaging.Linear}
	}
}

func (s *imagingScaler) String() string { return s.name }

func (s *imagingScaler) Resize(img image.Image, size Size) (image.Image, error) {
	return imaging.Resize(img, size.Width, size.Height, s.filter), nil
}
