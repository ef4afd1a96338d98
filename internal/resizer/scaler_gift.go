package resizer

import (
	"image"

	"github.com/disintegration/gift"
)

// GiftResampling selects a github.com/disintegration/gift resampling.
type GiftResampling int

const (
	GiftLinear GiftResampling = iota
	GiftLanczos
)

type giftScaler struct {
	name     string
	sampling gift.Resampling
}

// GiftScaler returns a Scaler backed by github.com/disintegration/gift.
// Parallelization is disabled; the call runs on the caller's goroutine.
func GiftScaler(r GiftResampling) Scaler {
	switch r {
	case GiftLanczos:
		return &giftScaler{name: "gift-lanczos", sampling: gift.LanczosResampling}
	default:
		return &giftScaler{name: "gift-linear", sampling: gift.LinearResampling}
	}
}

func (s *giftScaler) String() string { return s.name }

func (s *giftScaler) Resize(img image.Image, size Size) (image.Image, error) {
	g := gift.New(gift.Resize(size.Width, size.Height, s.sampling))
	g.SetParallelization(false)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst, nil
}
