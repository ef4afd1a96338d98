package utils

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func tiffBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4)), nil))
	return buf.Bytes()
}

func TestDetectImageType(t *testing.T) {
	assert.Equal(t, "image/png", DetectImageType(pngHeader))
	assert.Equal(t, "image/tiff", DetectImageType(tiffBytes(t)))
	assert.Equal(t, "text/plain; charset=utf-8", DetectImageType([]byte("hello world")))
}

func TestIsValidImageType(t *testing.T) {
	assert.True(t, IsValidImageType("image/png"))
	assert.True(t, IsValidImageType("IMAGE/JPEG; charset=binary"))
	assert.False(t, IsValidImageType("text/plain; charset=utf-8"))
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, IsRemoteURL("https://example.com/a.png"))
	assert.True(t, IsRemoteURL("HTTP://example.com/a.png"))
	assert.False(t, IsRemoteURL("frames/2026/a.png"))
}

func TestGenerateStorageKey(t *testing.T) {
	key := GenerateStorageKey("uploads/frame.png")
	assert.True(t, strings.HasPrefix(key, "resized/frame_"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.NotEqual(t, key, GenerateStorageKey("uploads/frame.png"))
}

func TestReplaceExtAndFilename(t *testing.T) {
	assert.Equal(t, "frame.jpeg", ReplaceExt("frame.png", "jpeg"))
	assert.Equal(t, "frame.png", ReplaceExt("frame", "png"))
	assert.True(t, strings.HasSuffix(GenerateFilename("abc", ""), ".jpeg"))
	assert.True(t, strings.HasPrefix(GenerateFilename("abc", "png"), "resized_abc_"))
}

func TestDownloadImage(t *testing.T) {
	tiffData := tiffBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write(pngHeader)
		case "/ok.tiff":
			w.Write(tiffData)
		case "/text":
			w.Write([]byte("hello world"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	data, contentType, err := DownloadImage(ctx, srv.URL+"/ok.png", 1024)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "image/png", contentType)

	data, contentType, err = DownloadImage(ctx, srv.URL+"/ok.tiff", 1024)
	require.NoError(t, err)
	assert.Equal(t, tiffData, data)
	assert.Equal(t, "image/tiff", contentType)

	_, _, err = DownloadImage(ctx, srv.URL+"/ok.png", 4)
	assert.Error(t, err)

	_, _, err = DownloadImage(ctx, srv.URL+"/text", 1024)
	assert.Error(t, err)

	_, _, err = DownloadImage(ctx, srv.URL+"/missing", 1024)
	assert.Error(t, err)
}
