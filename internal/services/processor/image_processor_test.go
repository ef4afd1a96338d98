package processor_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phambaophuc/texture-resizer/internal/models"
	"github.com/phambaophuc/texture-resizer/internal/resizer"
	"github.com/phambaophuc/texture-resizer/internal/services/processor"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int, string) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

func TestResizeImageKeepsSourceFormat(t *testing.T) {
	p := processor.NewImageProcessor(resizer.New(), false)

	buf, format, bitmap, err := p.ResizeImage(encodePNG(t, 120, 80), &models.ResizeRequest{Width: 512, Height: 1024})
	require.NoError(t, err)

	assert.Equal(t, models.FormatPNG, format)
	assert.Equal(t, resizer.Size{Width: 512, Height: 1024}, bitmap.Size())
	w, h, decoded := decodedSize(t, buf.Bytes())
	assert.Equal(t, 512, w)
	assert.Equal(t, 1024, h)
	assert.Equal(t, "png", decoded)
}

func TestResizeImageFormats(t *testing.T) {
	p := processor.NewImageProcessor(nil, false)
	src := encodePNG(t, 40, 40)

	tests := []struct {
		requested string
		written   string
	}{
		{"jpeg", "jpeg"},
		{"jpg", "jpeg"},
		{"gif", "gif"},
		{"bmp", "bmp"},
		{"tiff", "tiff"},
		{"webp", "png"},
	}
	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			buf, format, _, err := p.ResizeImage(src, &models.ResizeRequest{Width: 10, Height: 20, Format: tt.requested, Quality: 150})
			require.NoError(t, err)
			assert.Equal(t, tt.written, format)

			w, h, decoded := decodedSize(t, buf.Bytes())
			assert.Equal(t, 10, w)
			assert.Equal(t, 20, h)
			assert.Equal(t, tt.written, decoded)
		})
	}
}

func TestResizeImageMetadata(t *testing.T) {
	p := processor.NewImageProcessor(nil, true)

	_, _, bitmap, err := p.ResizeImage(encodePNG(t, 20, 20), &models.ResizeRequest{Width: 5, Height: 5, Scale: 2, Orientation: 6})
	require.NoError(t, err)
	assert.Equal(t, 2.0, bitmap.Scale)
	assert.Equal(t, resizer.OrientationRight, bitmap.Orientation)

	_, _, _, err = p.ResizeImage(encodePNG(t, 20, 20), &models.ResizeRequest{Width: 5, Height: 5, Orientation: 9})
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)
}

func TestResizeImageInvalidInput(t *testing.T) {
	p := processor.NewImageProcessor(nil, false)

	_, _, _, err := p.ResizeImage(encodePNG(t, 20, 20), &models.ResizeRequest{Width: 0, Height: 5})
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)

	_, _, _, err = p.ResizeImage([]byte("not an image"), &models.ResizeRequest{Width: 5, Height: 5})
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)

	_, _, _, err = p.ResizeImage(nil, &models.ResizeRequest{Width: 5, Height: 5})
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)

	_, _, _, err = p.ResizeImage(encodePNG(t, 20, 20), nil)
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)
}

func TestResizeImageAllocationLimit(t *testing.T) {
	p := processor.NewImageProcessor(resizer.New(resizer.WithMaxPixels(1000)), false)

	_, _, _, err := p.ResizeImage(encodePNG(t, 20, 20), &models.ResizeRequest{Width: 100, Height: 100})
	assert.ErrorIs(t, err, resizer.ErrAllocation)
}

func TestResizeImageRejectsOversizedSource(t *testing.T) {
	p := processor.NewImageProcessor(resizer.New(resizer.WithMaxPixels(100)), false)

	_, _, _, err := p.ResizeImage(encodePNG(t, 20, 20), &models.ResizeRequest{Width: 5, Height: 5})
	assert.ErrorIs(t, err, resizer.ErrAllocation)
	assert.Contains(t, err.Error(), "source 20x20")

	_, _, _, err = p.ResizeImage(encodePNG(t, 10, 10), &models.ResizeRequest{Width: 5, Height: 5})
	assert.NoError(t, err)
}

func TestProcessImageFromReader(t *testing.T) {
	p := processor.NewImageProcessor(nil, false)

	buf, _, _, err := p.ProcessImage(bytes.NewReader(encodePNG(t, 30, 30)), &models.ResizeRequest{Width: 15, Height: 15})
	require.NoError(t, err)
	w, h, _ := decodedSize(t, buf.Bytes())
	assert.Equal(t, 15, w)
	assert.Equal(t, 15, h)
}

func TestValidateImage(t *testing.T) {
	p := processor.NewImageProcessor(nil, false)
	data := encodePNG(t, 10, 10)

	r := bytes.NewReader(data)
	require.NoError(t, p.ValidateImage(r, 1<<20))
	assert.Equal(t, int64(len(data)), r.Size())
	pos, _ := r.Seek(0, 1)
	assert.Zero(t, pos)

	assert.ErrorIs(t, p.ValidateImage(bytes.NewReader(data), 10), resizer.ErrInvalidInput)
	assert.ErrorIs(t, p.ValidateImage(bytes.NewReader([]byte("garbage")), 1<<20), resizer.ErrInvalidInput)
	assert.ErrorIs(t, p.ValidateImage(bytes.NewReader(nil), 1<<20), resizer.ErrInvalidInput)
}

func TestBatchResize(t *testing.T) {
	p := processor.NewImageProcessor(nil, false)
	files := [][]byte{
		encodePNG(t, 10, 10),
		[]byte("broken"),
		encodePNG(t, 50, 20),
		encodePNG(t, 7, 90),
		encodePNG(t, 64, 64),
		encodePNG(t, 3, 3),
		encodePNG(t, 33, 11),
	}

	results := p.BatchResize(files, &models.ResizeRequest{Width: 16, Height: 8, Format: "png"})
	require.Len(t, results, len(files))

	for i, res := range results {
		if i == 1 {
			assert.NotEmpty(t, res.Error)
			assert.Nil(t, res.Buffer)
			continue
		}
		require.Empty(t, res.Error, i)
		assert.Equal(t, int64(res.Buffer.Len()), res.FileSize)
		w, h, _ := decodedSize(t, res.Buffer.Bytes())
		assert.Equal(t, 16, w)
		assert.Equal(t, 8, h)
	}

	assert.Empty(t, p.BatchResize(nil, &models.ResizeRequest{Width: 1, Height: 1}))
}

func TestBufferFromRequest(t *testing.T) {
	p := processor.NewImageProcessor(nil, false)
	data := make([]byte, 8*4*6)

	buf, size, err := processor.BufferFromRequest(&models.BufferResizeRequest{
		Width: 8, Height: 6, Format: "bgra32", TargetWidth: 4, TargetHeight: 3,
	}, data)
	require.NoError(t, err)
	assert.Equal(t, 32, buf.Stride)
	assert.Equal(t, resizer.Size{Width: 4, Height: 3}, size)

	out, err := p.ResizeBuffer(buf, size)
	require.NoError(t, err)
	assert.Equal(t, resizer.PixelFormatBGRA32, out.Format)
	assert.Len(t, out.Pix, 4*3*4)

	_, _, err = processor.BufferFromRequest(&models.BufferResizeRequest{Width: 8, Height: 6, Format: "nv12"}, data)
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)

	_, _, err = processor.BufferFromRequest(&models.BufferResizeRequest{Width: 8, Height: 7, Format: "bgra32"}, data)
	assert.ErrorIs(t, err, resizer.ErrInvalidInput)
}
