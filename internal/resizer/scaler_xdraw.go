package resizer

import (
	"image"

	"golang.org/x/image/draw"
)

// XDrawInterpolator selects a golang.org/x/image/draw interpolator.
type XDrawInterpolator int

const (
	XDrawBiLinear XDrawInterpolator = iota
	XDrawApproxBiLinear
	XDrawCatmullRom
	XDrawNearest
)

type xdrawScaler struct {
	name   string
	scaler draw.Scaler
}

// XDrawScaler returns a Scaler backed by golang.org/x/image/draw. Output
// images are *image.RGBA.
func XDrawScaler(i XDrawInterpolator) Scaler {
	switch i {
	case XDrawApproxBiLinear:
		return &xdrawScaler{name: "xdraw-approx-bilinear", scaler: draw.ApproxBiLinear}
	case XDrawCatmullRom:
		return &xdrawScaler{name: "xdraw-catmullrom", scaler: draw.CatmullRom}
	case XDrawNearest:
		return &xdrawScaler{name: "xdraw-nearest", scaler: draw.NearestNeighbor}
	default:
		return &xdrawScaler{name: "xdraw-bilinear", scaler: draw.BiLinear}
	}
}

func (s *xdrawScaler) String() string { return s.name }

func (s *xdrawScaler) Resize(img image.Image, size Size) (image.Image, error) {
	dst := image.NewRGBA(size.Rect())
	s.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
