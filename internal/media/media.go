// Package media holds the image post-steps shared by the conversion
// stages: integer upscaling for modern display resolutions and PNG
// encoding for modpack output.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// Upscale scales an image by an integer factor with nearest-neighbor
// sampling, which keeps the hard pixel edges of legacy sprites. Factor 1
// returns the input unchanged.
func Upscale(src *image.RGBA, factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("invalid upscale factor %d", factor)
	}
	if factor == 1 {
		return src, nil
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// EncodePNG renders an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
