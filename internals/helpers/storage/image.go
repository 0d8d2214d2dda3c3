// file: internals/helpers/storage/image.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Batas upload gambar: 2 MiB (selaras dengan validasi lama Laravel max:2048)
const MaxImageSize = 2 * 1024 * 1024

const (
	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 80
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// SniffImageType mendeteksi content-type dari isi file (bukan ekstensi)
// dan mengembalikan ok=false jika bukan format gambar yang didukung.
func SniffImageType(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	_, ok := allowedImageTypes[ct]
	return ct, ok
}

// PrepareImage menyiapkan blob siap-upload dari upload mentah:
// decode → downscale bila perlu → re-encode WebP. GIF disimpan apa adanya
// supaya animasinya tidak hilang. Nama file baru selalu unik (uuid).
func PrepareImage(data []byte) (out []byte, filename string, err error) {
	ct, ok := SniffImageType(data)
	if !ok {
		return nil, "", fmt.Errorf("format gambar tidak didukung")
	}

	if ct == "image/gif" {
		// Sniff hanya membaca header; decode memastikan isinya benar GIF.
		if err := DecodeGIF(data); err != nil {
			return nil, "", fmt.Errorf("decode gambar gagal: %w", err)
		}
		return data, uuid.New().String() + ".gif", nil
	}

	var img image.Image
	switch ct {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, "", fmt.Errorf("decode gambar gagal: %w", err)
	}

	img = downscaleIfNeeded(img, webpMaxW, webpMaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, "", fmt.Errorf("encode webp gagal: %w", err)
	}
	return buf.Bytes(), uuid.New().String() + ".webp", nil
}

// Resize keep-aspect. Pakai CatmullRom (kualitas bagus).
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// DecodeGIF memastikan GIF upload benar-benar bisa di-decode
// (GIF disimpan mentah, jadi ini satu-satunya validasi isinya).
func DecodeGIF(data []byte) error {
	_, err := gif.Decode(bytes.NewReader(data))
	return err
}
