package resizer

import (
	"fmt"
	"image"
	"sort"
)

// Scaler resamples an image to an exact size. Implementations must return a
// new image whose bounds are size.Rect() and must not modify img.
type Scaler interface {
	fmt.Stringer
	Resize(img image.Image, size Size) (image.Image, error)
}

var scalers = map[string]func() Scaler{
	"imaging-linear":        func() Scaler { return ImagingScaler(ImagingLinear) },
	"imaging-lanczos":       func() Scaler { return ImagingScaler(ImagingLanczos) },
	"imaging-nearest":       func() Scaler { return ImagingScaler(ImagingNearest) },
	"xdraw-bilinear":        func() Scaler { return XDrawScaler(XDrawBiLinear) },
	"xdraw-approx-bilinear": func() Scaler { return XDrawScaler(XDrawApproxBiLinear) },
	"xdraw-catmullrom":      func() Scaler { return XDrawScaler(XDrawCatmullRom) },
	"xdraw-nearest":         func() Scaler { return XDrawScaler(XDrawNearest) },
	"nfnt-bilinear":         func() Scaler { return NfntScaler(NfntBilinear) },
	"nfnt-bicubic":          func() Scaler { return NfntScaler(NfntBicubic) },
	"nfnt-lanczos3":         func() Scaler { return NfntScaler(NfntLanczos3) },
	"rez-bilinear":          func() Scaler { return RezScaler(RezBilinear) },
	"rez-bicubic":           func() Scaler { return RezScaler(RezBicubic) },
	"gift-linear":           func() Scaler { return GiftScaler(GiftLinear) },
	"gift-lanczos":          func() Scaler { return GiftScaler(GiftLanczos) },
	"bild-linear":           func() Scaler { return BildScaler(BildLinear) },
	"bild-lanczos":          func() Scaler { return BildScaler(BildLanczos) },
}

// ScalerByName returns the registered scaler called name.
func ScalerByName(name string) (Scaler, error) {
	newScaler, ok := scalers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scaler %q", ErrInvalidInput, name)
	}
	return newScaler(), nil
}

// ScalerNames lists the registered scaler names in sorted order.
func ScalerNames() []string {
	names := make([]string, 0, len(scalers))
	for name := range scalers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
