package resizer

import (
	"image"

	"github.com/bamiaux/rez"
	"golang.org/x/image/draw"
)

// RezFilter selects a github.com/bamiaux/rez filter.
type RezFilter int

const (
	RezBilinear RezFilter = iota
	RezBicubic
)

// rezMinSize is the smallest edge, in pixels, handed to rez. rez rejects
// inputs and outputs narrower than its filter taps.
const rezMinSize = 8

type rezScaler struct {
	name     string
	filter   rez.Filter
	fallback Scaler
}

// RezScaler returns a Scaler backed by github.com/bamiaux/rez, which uses
// SIMD on amd64. Gray sources stay *image.Gray; everything else is scaled
// as *image.RGBA. Images with an edge shorter than rez supports go through
// the matching x/image/draw kernel instead.
func RezScaler(f RezFilter) Scaler {
	switch f {
	case RezBicubic:
		return &rezScaler{name: "rez-bicubic", filter: rez.NewBicubicFilter(), fallback: XDrawScaler(XDrawCatmullRom)}
	default:
		return &rezScaler{name: "rez-bilinear", filter: rez.NewBilinearFilter(), fallback: XDrawScaler(XDrawBiLinear)}
	}
}

func (s *rezScaler) String() string { return s.name }

func (s *rezScaler) Resize(img image.Image, size Size) (image.Image, error) {
	if !rezSupports(sizeOf(img.Bounds())) || !rezSupports(size) {
		return s.fallback.Resize(img, size)
	}

	var src, dst image.Image
	switch it := img.(type) {
	case *image.Gray:
		src = it
		dst = image.NewGray(size.Rect())
	case *image.RGBA:
		src = it
		dst = image.NewRGBA(size.Rect())
	default:
		// rez requires matching input and output layouts.
		b := img.Bounds()
		m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
		src = m
		dst = image.NewRGBA(size.Rect())
	}
	// rez also refuses geometries where the scaled filter outgrows the image.
	if err := rez.Convert(dst, src, s.filter); err != nil {
		return s.fallback.Resize(img, size)
	}
	return dst, nil
}

func rezSupports(s Size) bool {
	return s.Width >= rezMinSize && s.Height >= rezMinSize
}
