package resizer_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phambaophuc/texture-resizer/internal/resizer"
)

func TestScalerNames(t *testing.T) {
	names := resizer.ScalerNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "imaging-linear")
	assert.Contains(t, names, "xdraw-bilinear")

	_, err := resizer.ScalerByName("seam-carving")
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)
}

func TestEveryScalerHitsTargetSize(t *testing.T) {
	sources := map[string]image.Image{
		"nrgba":  gradient(64, 48),
		"gray":   image.NewGray(image.Rect(0, 0, 64, 48)),
		"offset": gradient(80, 60).SubImage(image.Rect(10, 10, 74, 58)),
		"pixel":  gradient(1, 1),
		"column": gradient(1, 50),
		"tiny":   gradient(2, 2),
	}
	targets := []resizer.Size{
		{Width: 20, Height: 30},
		{Width: 96, Height: 72},
		{Width: 64, Height: 48},
		{Width: 1, Height: 1},
		{Width: 50, Height: 1},
		{Width: 3, Height: 1},
		{Width: 64, Height: 64},
	}

	for _, name := range resizer.ScalerNames() {
		s, err := resizer.ScalerByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())

		for srcName, src := range sources {
			for _, size := range targets {
				r := resizer.New(resizer.WithBitmapScaler(s))
				out, err := r.ResizeBitmap(size, resizer.NewBitmap(src))
				require.NoError(t, err, "%s/%s/%s", name, srcName, size)
				assert.Equal(t, size, out.Size(), "%s/%s", name, srcName)
			}
		}
	}
}

func TestEveryScalerHitsTargetSizeForBuffers(t *testing.T) {
	formats := []resizer.PixelFormat{resizer.PixelFormatBGRA32, resizer.PixelFormatRGBA32, resizer.PixelFormatGray8}
	sources := []resizer.Size{{Width: 64, Height: 48}, {Width: 1, Height: 1}, {Width: 2, Height: 2}, {Width: 1, Height: 50}}
	targets := []resizer.Size{{Width: 20, Height: 30}, {Width: 96, Height: 72}, {Width: 1, Height: 1}, {Width: 3, Height: 1}, {Width: 64, Height: 64}}

	for _, name := range resizer.ScalerNames() {
		s, err := resizer.ScalerByName(name)
		require.NoError(t, err)
		r := resizer.New(resizer.WithBufferScaler(s))

		for _, format := range formats {
			for _, srcSize := range sources {
				src, err := resizer.NewPixelBuffer(srcSize, format)
				require.NoError(t, err)
				for i := range src.Pix {
					src.Pix[i] = byte(i * 7)
				}

				for _, size := range targets {
					out, err := r.ResizePixelBuffer(size, src)
					require.NoError(t, err, "%s/%s/%s->%s", name, format, srcSize, size)
					assert.Equal(t, size, out.Size(), "%s/%s/%s", name, format, srcSize)
					assert.Equal(t, format, out.Format)
					assert.Len(t, out.Pix, size.Width*size.Height*format.BytesPerPixel())
				}
			}
		}
	}
}

func TestRezFallsBackForNarrowImages(t *testing.T) {
	for _, name := range []string{"rez-bilinear", "rez-bicubic"} {
		s, err := resizer.ScalerByName(name)
		require.NoError(t, err)

		out, err := s.Resize(gradient(1, 1), resizer.Size{Width: 64, Height: 64})
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 64, 64), out.Bounds())

		out, err = s.Resize(gradient(64, 64), resizer.Size{Width: 1, Height: 1})
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())

		out, err = s.Resize(gradient(1, 50), resizer.Size{Width: 50, Height: 1})
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 50, 1), out.Bounds())
	}
}
