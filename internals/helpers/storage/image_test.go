// file: internals/helpers/storage/image_test.go
package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return buf.Bytes()
}

func gifBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), []color.Color{color.Black, color.White})
	buf := new(bytes.Buffer)
	require.NoError(t, gif.Encode(buf, img, nil))
	return buf.Bytes()
}

func TestSniffImageType(t *testing.T) {
	ct, ok := SniffImageType(pngBytes(t, 4, 4))
	assert.True(t, ok)
	assert.Equal(t, "image/png", ct)

	ct, ok = SniffImageType(jpegBytes(t))
	assert.True(t, ok)
	assert.Equal(t, "image/jpeg", ct)

	ct, ok = SniffImageType(gifBytes(t))
	assert.True(t, ok)
	assert.Equal(t, "image/gif", ct)

	_, ok = SniffImageType([]byte("%PDF-1.7 bukan gambar"))
	assert.False(t, ok)

	_, ok = SniffImageType(nil)
	assert.False(t, ok)
}

func TestPrepareImage_PNGToWebP(t *testing.T) {
	out, filename, err := PrepareImage(pngBytes(t, 16, 16))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".webp"), "filename = %q", filename)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestPrepareImage_Downscale(t *testing.T) {
	out, _, err := PrepareImage(pngBytes(t, webpMaxW*2, webpMaxH))
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), webpMaxW)
	assert.LessOrEqual(t, img.Bounds().Dy(), webpMaxH)
}

// GIF tidak di-re-encode supaya animasi tidak hilang.
func TestPrepareImage_GIFPassthrough(t *testing.T) {
	raw := gifBytes(t)
	out, filename, err := PrepareImage(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".gif"))
	assert.Equal(t, raw, out)
}

// Header GIF valid tapi isinya rusak: lolos sniff, harus gagal di decode.
func TestPrepareImage_CorruptGIF(t *testing.T) {
	_, _, err := PrepareImage([]byte("GIF89a\x01\x02bukan isi gif"))
	assert.Error(t, err)
}

func TestPrepareImage_UniqueFilenames(t *testing.T) {
	data := pngBytes(t, 4, 4)
	_, f1, err := PrepareImage(data)
	require.NoError(t, err)
	_, f2, err := PrepareImage(data)
	require.NoError(t, err)
	assert.NotEqual(t, f1, f2)
}

func TestPrepareImage_Rejected(t *testing.T) {
	_, _, err := PrepareImage([]byte("isi file teks biasa"))
	assert.Error(t, err)
}
